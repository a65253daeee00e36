package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogmemory "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Apurer/go-gin-order-server/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"
	ordersmemory "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-gin-order-server/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/Apurer/go-gin-order-server/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/go-gin-order-server/internal/durable/temporal/workflows/orders"
	platformobservability "github.com/Apurer/go-gin-order-server/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-order-server/internal/platform/postgres"
	orderactivities "github.com/Apurer/go-gin-order-server/internal/platform/temporal/activities/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "storefront-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	ledger, catalogRepo, cleanupDB := buildStores(ctx, logger)
	defer cleanupDB()
	orderService := ordersobs.New(
		ordersapp.NewService(ledger, catalogapp.NewService(catalogRepo), ordersapp.WithLogger(logger)),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	orderActivities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.FulfillmentTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.FulfillmentWorkflow, workflow.RegisterOptions{Name: orderworkflows.FulfillmentWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.ShipOrder, activity.RegisterOptions{Name: orderactivities.ShipOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.FulfillmentTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildStores(ctx context.Context, logger *slog.Logger) (ordersports.Ledger, catalogports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		logger.Warn("worker using in-memory stores")
		return ordersmemory.NewLedger(), catalogmemory.NewRepository(), cleanup
	}
	logger.Info("worker stores configured with postgres")
	return orderspostgres.NewLedger(db), catalogpostgres.NewRepository(db), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
