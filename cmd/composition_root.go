package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/postgres"
	redisadapter "fooddelivery/internal/adapters/out/redis"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	pricing         services.PricingPolicy
	publisher       ports.OrderEventPublisher
	statisticsCache ports.StatisticsCache
	redisClient     *redis.Client
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	pricing, err := services.NewPricingPolicy(config.DeliveryFee, config.TaxRate)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid pricing configuration: %w", err)
	}

	publisher := kafka.NewProducer(
		kafka.DefaultProducerConfig([]string{config.KafkaHost}), logger)

	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisHost})

	cacheTTL := redisadapter.DefaultTTL
	if config.StatisticsCacheTTL != "" {
		cacheTTL, err = time.ParseDuration(config.StatisticsCacheTTL)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("invalid statistics cache TTL: %w", err)
		}
	}

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:         pricing,
		publisher:       publisher,
		statisticsCache: redisadapter.NewStatisticsCache(redisClient, cacheTTL),
		redisClient:     redisClient,
	}, nil
}

// Close releases outbound connections. Called on shutdown.
func (c *CompositionRoot) Close() error {
	if err := c.publisher.Close(); err != nil {
		return err
	}
	return c.redisClient.Close()
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.pricing, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSeedMenuCommandHandler() commands.SeedMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedMenuCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.gormDB, c.statisticsCache)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
