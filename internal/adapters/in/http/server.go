// Package http exposes the order system over a REST API.
// Handlers translate between wire DTOs and application commands/queries;
// business rules stay in the domain layer.
package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler

	// Query handlers
	getOrdersHandler     queries.GetOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getMenuHandler       queries.GetMenuQueryHandler
	getStatisticsHandler queries.GetStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getStatisticsHandler queries.GetStatisticsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:    placeOrderHandler,
		advanceOrderHandler:  advanceOrderHandler,
		getOrdersHandler:     getOrdersHandler,
		getOrderHandler:      getOrderHandler,
		getMenuHandler:       getMenuHandler,
		getStatisticsHandler: getStatisticsHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/products", s.GetProducts)
	api.GET("/extras", s.GetExtras)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.GET("/statistics", s.GetStatistics)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetProducts handles GET /api/v1/products - retrieves the product catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponses(menu.Products))
}

// GetExtras handles GET /api/v1/extras - retrieves the valid extras.
func (s *Server) GetExtras(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, extrasFromResponses(menu.Extras))
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	items, err := itemSpecsFromRequest(req.Items)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		req.CustomerName,
		req.CustomerPhone,
		req.CustomerEmail,
		req.DeliveryAddress,
		items,
		req.Notes,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrders handles GET /api/v1/orders - retrieves orders, optionally
// excluding one status via the exclude_status query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	if raw := ctx.QueryParam("exclude_status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return errorJSON(ctx, err)
		}

		query, err = queries.NewGetOrdersQueryExcludingStatus(status)
		if err != nil {
			return errorJSON(ctx, err)
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order to
// its next lifecycle status on behalf of the requesting role.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req AdvanceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid advance data: " + err.Error(),
		})
	}

	role, err := order.RoleFromString(req.Role)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, role)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetStatistics handles GET /api/v1/statistics - retrieves aggregated statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.getStatisticsHandler.Handle(
		ctx.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statisticsFromDomain(stats))
}

// respondWithOrder loads the order read model and writes it with the given
// status code. Used after writes so clients always see the stored state.
func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(code, orderFromResponse(response))
}

func itemSpecsFromRequest(items []OrderItemRequest) ([]commands.OrderItemSpec, error) {
	specs := make([]commands.OrderItemSpec, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		extraIDs := make([]kernel.UUID, 0, len(item.ExtraIDs))
		for _, raw := range item.ExtraIDs {
			extraID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return nil, err
			}
			extraIDs = append(extraIDs, extraID)
		}

		spec, err := commands.NewOrderItemSpec(productID, extraIDs, item.Quantity)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// errorJSON maps domain and application errors to HTTP status codes.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	var upstream *errs.UpstreamFailureError

	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidLineItem),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, commands.ErrOrderItemsAreRequired),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.As(err, &invalid),
		errors.As(err, &required),
		errors.As(err, &outOfRange):
		code = http.StatusBadRequest
	case errors.As(err, &upstream):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
