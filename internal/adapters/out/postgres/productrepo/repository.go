package productrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddProduct saves a new catalog product to the database.
func (r *GormMenuRepository) AddProduct(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamFailureError("insert product", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddExtra saves a new extra to the database.
func (r *GormMenuRepository) AddExtra(ctx context.Context, aggregate *product.Extra) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := extraFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamFailureError("insert extra", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetProduct retrieves a product by ID.
func (r *GormMenuRepository) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, errs.NewUpstreamFailureError("select product", err)
	}

	return productToDomain(dto)
}

// GetExtra retrieves an extra by ID.
func (r *GormMenuRepository) GetExtra(ctx context.Context, id kernel.UUID) (*product.Extra, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExtraDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("extra", id.String())
		}
		return nil, errs.NewUpstreamFailureError("select extra", err)
	}

	return extraToDomain(dto)
}

// GetAllProducts retrieves the full catalog sorted by name.
func (r *GormMenuRepository) GetAllProducts(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, errs.NewUpstreamFailureError("select products", err)
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// GetAllExtras retrieves every extra sorted by name.
func (r *GormMenuRepository) GetAllExtras(ctx context.Context) ([]*product.Extra, error) {
	var dtos []ExtraDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, errs.NewUpstreamFailureError("select extras", err)
	}

	extras := make([]*product.Extra, 0, len(dtos))
	for _, dto := range dtos {
		e, err := extraToDomain(dto)
		if err != nil {
			return nil, err
		}
		extras = append(extras, e)
	}

	return extras, nil
}

// CountProducts returns the number of catalog products.
func (r *GormMenuRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&count).Error; err != nil {
		return 0, errs.NewUpstreamFailureError("count products", err)
	}

	return count, nil
}
