package queries_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency;
// query tests don't assert on tracked aggregates.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startPostgres boots a disposable PostgreSQL container and opens a GORM
// connection to it.
func startPostgres(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	return container, db, nil
}

func mustParseMoney(value string) kernel.Money {
	m, err := kernel.MoneyFromString(value)
	if err != nil {
		panic(err)
	}
	return m
}

// buildTestOrder assembles a full order aggregate in the given status with
// one hamburger line carrying an extra.
func buildTestOrder(status order.Status, total string, createdAt time.Time) (*order.Order, error) {
	p, err := product.NewProduct(kernel.NewUUID(), "Hamburger", mustParseMoney("8.00"))
	if err != nil {
		return nil, err
	}

	extra, err := product.NewExtra(kernel.NewUUID(), "extra cheese", mustParseMoney("2.50"), "cheese")
	if err != nil {
		return nil, err
	}

	item, err := order.NewLineItem(p, []*product.Extra{extra}, 2)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer("Juan Perez", "555-1111", "juan@email.com", "Main Street 123")
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		kernel.NewUUID(),
		customer,
		[]order.LineItem{item},
		status,
		mustParseMoney(total),
		"ring the bell",
		createdAt,
		createdAt,
	)
}
