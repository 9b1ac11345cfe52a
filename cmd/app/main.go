package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"fooddelivery/cmd"
	httpserver "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/productrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close outbound connections", "error", closeErr)
		}
	}()

	seedMenu(&app)

	jobManager := jobs.NewJobManager(app.CreateGetStatisticsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		RedisHost:          goDotEnvVariable("REDIS_HOST"),
		DeliveryFee:        goDotEnvVariable("DELIVERY_FEE"),
		TaxRate:            goDotEnvVariable("TAX_RATE"),
		StatisticsCacheTTL: goDotEnvVariable("STATISTICS_CACHE_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustConnectDB verifies connectivity with a plain database/sql ping before
// handing the DSN to GORM, then runs schema migration.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	probe, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := probe.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	if err := probe.Close(); err != nil {
		log.Fatalf("Failed to close probe connection: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.ExtraDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderItemExtraDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

// seedMenu loads the default catalog on first boot. No-op when products exist.
func seedMenu(app *cmd.CompositionRoot) {
	handler := app.CreateSeedMenuCommandHandler()
	if err := handler.Handle(context.Background(), commands.NewSeedMenuCommand()); err != nil {
		log.Fatalf("Failed to seed menu: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpserver.NewRequestValidator()
	e.Use(httpserver.PrometheusMetrics())

	server := httpserver.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetStatisticsQueryHandler(),
	)
	server.RegisterRoutes(e)
	httpserver.RegisterMetricsRoute(e)

	doc, err := httpserver.LoadOpenAPIDocument()
	if err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}
	httpserver.RegisterOpenAPIRoute(e, doc)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
