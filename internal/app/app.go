package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sadumina/CarbonXinsight/config"
	"github.com/sadumina/CarbonXinsight/internal/api"
	"github.com/sadumina/CarbonXinsight/internal/extract"
	"github.com/sadumina/CarbonXinsight/internal/ingestion"
	"github.com/sadumina/CarbonXinsight/internal/service"
	"github.com/sadumina/CarbonXinsight/internal/storage"
)

// mongoOpener is an indirection used by InitializeApp; overridden in tests
// to avoid real connections.
var mongoOpener = InitMongo

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Connects to MongoDB using InitMongo().
//   - Initializes the repository layer (PriceRepository).
//   - Wires the ingestion orchestrator (PDF extractor + repository).
//   - Wires the analytics service and HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	client, err := mongoOpener(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize mongo: %w", err)
	}
	coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)

	repo := storage.NewPriceRepository(coll)

	orchestrator := ingestion.NewOrchestrator(cfg.Ingest.Product, extract.NewPDFExtractor(), repo)
	svc := service.NewAnalyticsService(cfg.Ingest.Product, repo)

	handler := api.NewHandler(orchestrator, svc)
	router := api.NewRouter(handler, cfg.CORS.AllowedOrigins)

	healthHandler := api.NewHealthHandler(func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
	healthHandler.Register(router)

	cleanup := func() {
		_ = client.Disconnect(context.Background())
	}

	return router, cleanup, nil
}

// InitializeIngestion wires just the ingestion side for CLI directory
// mode: store connection, repository, and orchestrator.
func InitializeIngestion(ctx context.Context) (*ingestion.Orchestrator, func(), error) {
	cfg := config.AppConfig

	client, err := mongoOpener(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize mongo: %w", err)
	}
	coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)

	repo := storage.NewPriceRepository(coll)
	orchestrator := ingestion.NewOrchestrator(cfg.Ingest.Product, extract.NewPDFExtractor(), repo)

	cleanup := func() {
		_ = client.Disconnect(context.Background())
	}
	return orchestrator, cleanup, nil
}
