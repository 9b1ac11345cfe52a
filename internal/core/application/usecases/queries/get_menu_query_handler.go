package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves the product catalog from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query and returns the catalog, products and extras
// each sorted by name.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (MenuResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuResponse{}, err
	}

	products, err := h.readProducts(ctx)
	if err != nil {
		return MenuResponse{}, err
	}

	extras, err := h.readExtras(ctx)
	if err != nil {
		return MenuResponse{}, err
	}

	return MenuResponse{Products: products, Extras: extras}, nil
}

func (h GetMenuQueryHandler) readProducts(ctx context.Context) ([]ProductResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			base_price_cents,
			description,
			category,
			available
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, errs.NewUpstreamFailureError("query products", err)
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			priceCents int64
			resp       ProductResponse
		)

		err = rows.Scan(&id, &resp.Name, &priceCents, &resp.Description, &resp.Category, &resp.Available)
		if err != nil {
			return nil, errs.NewUpstreamFailureError("scan product row", err)
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, moneyErr := kernel.NewMoneyFromCents(priceCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		resp.ID = productID
		resp.BasePrice = price
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewUpstreamFailureError("query products", err)
	}

	return products, nil
}

func (h GetMenuQueryHandler) readExtras(ctx context.Context) ([]ExtraResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price_cents,
			category
		FROM extras
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, errs.NewUpstreamFailureError("query extras", err)
	}
	defer rows.Close()

	extras := make([]ExtraResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			priceCents int64
			resp       ExtraResponse
		)

		err = rows.Scan(&id, &resp.Name, &priceCents, &resp.Category)
		if err != nil {
			return nil, errs.NewUpstreamFailureError("scan extra row", err)
		}

		extraID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, moneyErr := kernel.NewMoneyFromCents(priceCents)
		if moneyErr != nil {
			return nil, moneyErr
		}

		resp.ID = extraID
		resp.Price = price
		extras = append(extras, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewUpstreamFailureError("query extras", err)
	}

	return extras, nil
}
