package main

//
//  @title           CarbonXInsight API
//  @version         1.0
//  @description     Commodity price ingestion & market analytics service.
//  @termsOfService  https://github.com/sadumina/CarbonXinsight
//  @contact.name    API Support
//  @contact.url     https://github.com/sadumina/CarbonXinsight
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        ingest
//  @tag.description Upload endpoints for PDF bulletins and spreadsheets
//
//  @tag.name        analytics
//  @tag.description Aggregated price analytics per country
//
//  @tag.name        data
//  @tag.description Record counts and bulk clear
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sadumina/CarbonXinsight/config"
	_ "github.com/sadumina/CarbonXinsight/docs" // swagger docs
	"github.com/sadumina/CarbonXinsight/internal/app"
	"github.com/sadumina/CarbonXinsight/internal/ingestion"
	"github.com/sadumina/CarbonXinsight/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and cleans up resources when
// an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the CarbonXInsight service.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API for uploads and analytics (default).
//   - ingest: Ingests every PDF in --dir as one batch and exits.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or ingest")
	dir := flag.String("dir", "./data/input", "Directory with PDF bulletins (ingest mode)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "ingest":
		logger.L().Info().Msg("running ingestion")

		orchestrator, cleanup, err := app.InitializeIngestion(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion init error")
		}
		defer cleanup()

		report, err := ingestion.ProcessDirectory(ctx, *dir, orchestrator)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().
			Int("documents", report.DocumentsProcessed).
			Int("failed", len(report.Errors)).
			Int("records", report.RecordsInserted).
			Msg("ingestion completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
