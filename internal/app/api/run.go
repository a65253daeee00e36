package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	storefrontserver "github.com/Apurer/go-gin-order-server/go"

	catalogmemory "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Apurer/go-gin-order-server/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"

	customersmemory "github.com/Apurer/go-gin-order-server/internal/domains/customers/adapters/memory"
	customersobs "github.com/Apurer/go-gin-order-server/internal/domains/customers/adapters/observability"
	customerspostgres "github.com/Apurer/go-gin-order-server/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/Apurer/go-gin-order-server/internal/domains/customers/application"
	customersports "github.com/Apurer/go-gin-order-server/internal/domains/customers/ports"

	ordersmemory "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Apurer/go-gin-order-server/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"

	platformmigrations "github.com/Apurer/go-gin-order-server/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-order-server/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-order-server/internal/platform/postgres"
)

// Run boots the storefront HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	catalogService := catalogobs.New(
		catalogapp.NewService(buildCatalogRepository(db, logger)),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
	)
	customerService := customersobs.New(
		customersapp.NewService(buildCustomerRepository(db, logger)),
		customersobs.WithLogger(logger),
		customersobs.WithTracer(instruments.Tracer("internal.customers.application")),
		customersobs.WithMeter(instruments.Meter("internal.customers.application")),
	)
	orderService := ordersobs.New(
		ordersapp.NewService(buildOrderLedger(db, logger), catalogService, ordersapp.WithLogger(logger)),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var fulfillment ordersports.Fulfillment = ordersworkflows.NewInlineFulfillment(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, confirming payments inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		fulfillment = ordersworkflows.NewTemporalFulfillment(orderService, temporalClient, cfg.ShipDelay)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := storefrontserver.ApiHandleFunctions{
		AuthAPI:    storefrontserver.NewAuthAPI(customerService),
		CatalogAPI: storefrontserver.NewCatalogAPI(catalogService),
		OrdersAPI:  storefrontserver.NewOrdersAPI(orderService, fulfillment),
	}

	router := storefrontserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildCatalogRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		logger.Warn("using in-memory catalog repository")
		return catalogmemory.NewRepository()
	}
	return catalogpostgres.NewRepository(db)
}

func buildCustomerRepository(db *gorm.DB, logger *slog.Logger) customersports.Repository {
	if db == nil {
		logger.Warn("using in-memory customer repository")
		return customersmemory.NewRepository()
	}
	return customerspostgres.NewRepository(db)
}

func buildOrderLedger(db *gorm.DB, logger *slog.Logger) ordersports.Ledger {
	if db == nil {
		logger.Warn("using in-memory order ledger")
		return ordersmemory.NewLedger()
	}
	return orderspostgres.NewLedger(db)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
