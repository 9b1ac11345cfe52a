package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
)

// Default catalog installed into an empty database.
type seedProduct struct {
	name        string
	price       string
	description string
	category    string
}

type seedExtra struct {
	name     string
	price    string
	category string
}

func defaultProducts() []seedProduct {
	return []seedProduct{
		{"Hamburger", "8.00", "Juicy burger with premium beef", "mains"},
		{"Pizza", "12.00", "Artisan pizza with fresh ingredients", "mains"},
		{"Salad", "6.00", "Fresh salad with organic vegetables", "light"},
	}
}

func defaultExtras() []seedExtra {
	return []seedExtra{
		{"extra cheese", "2.50", "cheese"},
		{"extra meat", "4.00", "meat"},
		{"extra vegetables", "1.50", "vegetables"},
		{"extra sauce", "1.00", "sauce"},
	}
}

// SeedMenuCommandHandler installs the default catalog when none exists.
type SeedMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewSeedMenuCommandHandler creates a handler for menu seeding.
// Requires a MenuUoWFactory for transactional catalog access.
func NewSeedMenuCommandHandler(uowFactory MenuUoWFactory) SeedMenuCommandHandler {
	return SeedMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle seeds the default menu if the catalog holds no products.
// The count check and the inserts share one transaction, so concurrent
// startups cannot double-seed.
func (h *SeedMenuCommandHandler) Handle(ctx context.Context, cmd SeedMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	count, err := menuRepo.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range defaultProducts() {
		price, priceErr := kernel.MoneyFromString(seed.price)
		if priceErr != nil {
			return priceErr
		}

		p, productErr := product.RestoreProduct(
			kernel.NewUUID(), seed.name, price, seed.description, seed.category, true)
		if productErr != nil {
			return productErr
		}

		if err = menuRepo.AddProduct(ctx, p); err != nil {
			return err
		}
	}

	for _, seed := range defaultExtras() {
		price, priceErr := kernel.MoneyFromString(seed.price)
		if priceErr != nil {
			return priceErr
		}

		extra, extraErr := product.NewExtra(kernel.NewUUID(), seed.name, price, seed.category)
		if extraErr != nil {
			return extraErr
		}

		if err = menuRepo.AddExtra(ctx, extra); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	slog.Info("default menu seeded",
		"products", len(defaultProducts()), "extras", len(defaultExtras()))

	return nil
}
