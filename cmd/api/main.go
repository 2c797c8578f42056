package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chunkwise/internal/config"
	"chunkwise/internal/deploy"
	"chunkwise/internal/handlers"
	"chunkwise/internal/http"
	"chunkwise/internal/llm"
	"chunkwise/internal/service"
	"chunkwise/internal/storage"
	"chunkwise/internal/vectorstore"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	visualizer := service.NewVisualization(cfg.DefaultTheme)
	workflows := service.NewWorkflows(storage.NewWorkflowRepo(db), visualizer)

	healthChecks := map[string]handlers.HealthCheck{
		"database": db.PingContext,
	}

	deps := &http.Deps{
		VisualizationService: visualizer,
		WorkflowService:      workflows,
		HealthChecks:         healthChecks,
		DefaultTheme:         cfg.DefaultTheme,
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
		RequestTimeout:       cfg.RequestTimeout,
		MaxBodyBytes:         cfg.MaxBodyBytes,
	}

	var pipeline *deploy.Pipeline
	if cfg.DeployEnabled() {
		vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		defer func() {
			_ = vectorStore.Close()
		}()
		healthChecks["vector_store"] = vectorStore.Ping

		embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
		pipeline = deploy.NewPipeline(
			workflows,
			visualizer,
			storage.NewChunkRepo(db),
			embedder,
			vectorStore,
			cfg.QdrantCollection,
			cfg.QdrantVectorSize,
		)
		deps.Deployer = pipeline
		slog.Info("Deployment enabled", "qdrant_url", cfg.QdrantURL, "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)
	} else {
		slog.Info("Deployment disabled; set QDRANT_URL to enable it")
	}

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           http.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Starting API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	if pipeline != nil {
		pipeline.Wait()
	}
}
