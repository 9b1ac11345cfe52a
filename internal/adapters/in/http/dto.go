package http

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime/types"
)

// timeFormat is the wire format for timestamps.
const timeFormat = time.RFC3339

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the POST /api/v1/orders body.
type PlaceOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerPhone   string             `json:"customer_phone" validate:"required"`
	CustomerEmail   string             `json:"customer_email" validate:"omitempty,email"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes           string             `json:"notes"`
}

// OrderItemRequest selects one product with optional extras.
type OrderItemRequest struct {
	ProductID string   `json:"product_id" validate:"required,uuid"`
	ExtraIDs  []string `json:"extra_ids" validate:"omitempty,dive,uuid"`
	Quantity  int      `json:"quantity" validate:"required,min=1"`
}

// AdvanceOrderRequest is the POST /api/v1/orders/:id/advance body.
type AdvanceOrderRequest struct {
	Role string `json:"role" validate:"required"`
}

// Order is the JSON shape of one order.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	DeliveryAddress string      `json:"delivery_address"`
	Status          string      `json:"status"`
	Total           json.Number `json:"total"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is the JSON shape of one priced order line.
type OrderItem struct {
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	UnitPrice   json.Number  `json:"unit_price"`
	Quantity    int          `json:"quantity"`
	LineTotal   json.Number  `json:"line_total"`
	Extras      []OrderExtra `json:"extras"`
}

// OrderExtra is the JSON shape of one extra attached to a line.
type OrderExtra struct {
	ExtraID string      `json:"extra_id"`
	Name    string      `json:"name"`
	Price   json.Number `json:"price"`
}

// Product is the JSON shape of one catalog product.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	BasePrice   json.Number `json:"base_price"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Available   bool        `json:"available"`
}

// Extra is the JSON shape of one catalog extra.
type Extra struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Category string      `json:"category,omitempty"`
}

// Statistics is the JSON shape of the aggregated statistics.
type Statistics struct {
	TotalOrders       int            `json:"total_orders"`
	TotalRevenue      json.Number    `json:"total_revenue"`
	AverageOrderValue json.Number    `json:"average_order_value"`
	OrdersByStatus    map[string]int `json:"orders_by_status"`
	DailyRevenue      []DailyRevenue `json:"daily_revenue"`
}

// DailyRevenue is one calendar-day revenue bucket.
type DailyRevenue struct {
	Date    types.Date  `json:"date"`
	Revenue json.Number `json:"revenue"`
	Orders  int         `json:"orders"`
}

// amount renders Money as a fixed-point JSON number with two decimals.
func amount(m kernel.Money) json.Number {
	return json.Number(m.Decimal().StringFixed(2))
}

func orderFromResponse(r queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		extras := make([]OrderExtra, 0, len(item.Extras))
		for _, extra := range item.Extras {
			extras = append(extras, OrderExtra{
				ExtraID: extra.ExtraID.String(),
				Name:    extra.Name,
				Price:   amount(extra.Price),
			})
		}
		items = append(items, OrderItem{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   amount(item.UnitPrice),
			Quantity:    item.Quantity,
			LineTotal:   amount(item.LineTotal),
			Extras:      extras,
		})
	}

	return Order{
		ID:              r.ID.String(),
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		DeliveryAddress: r.DeliveryAddress,
		Status:          r.Status.String(),
		Total:           amount(r.Total),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt.UTC().Format(timeFormat),
		UpdatedAt:       r.UpdatedAt.UTC().Format(timeFormat),
		Items:           items,
	}
}

func ordersFromResponses(rs []queries.OrderResponse) []Order {
	orders := make([]Order, 0, len(rs))
	for _, r := range rs {
		orders = append(orders, orderFromResponse(r))
	}
	return orders
}

func productsFromResponses(rs []queries.ProductResponse) []Product {
	products := make([]Product, 0, len(rs))
	for _, r := range rs {
		products = append(products, Product{
			ID:          r.ID.String(),
			Name:        r.Name,
			BasePrice:   amount(r.BasePrice),
			Description: r.Description,
			Category:    r.Category,
			Available:   r.Available,
		})
	}
	return products
}

func extrasFromResponses(rs []queries.ExtraResponse) []Extra {
	extras := make([]Extra, 0, len(rs))
	for _, r := range rs {
		extras = append(extras, Extra{
			ID:       r.ID.String(),
			Name:     r.Name,
			Price:    amount(r.Price),
			Category: r.Category,
		})
	}
	return extras
}

func statisticsFromDomain(stats services.Statistics) Statistics {
	byStatus := make(map[string]int, len(stats.OrdersByStatus))
	for status, count := range stats.OrdersByStatus {
		byStatus[status.String()] = count
	}

	daily := make([]DailyRevenue, 0, len(stats.DailyRevenue))
	for _, day := range stats.DailyRevenue {
		daily = append(daily, DailyRevenue{
			Date:    types.Date{Time: day.Date},
			Revenue: amount(day.Revenue),
			Orders:  day.Orders,
		})
	}

	return Statistics{
		TotalOrders:       stats.TotalOrders,
		TotalRevenue:      amount(stats.TotalRevenue),
		AverageOrderValue: amount(stats.AverageOrderValue),
		OrdersByStatus:    byStatus,
		DailyRevenue:      daily,
	}
}

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request body structs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
