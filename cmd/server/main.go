// Package main is the entry point for the village-api service.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"github.com/nucleus/village-api/graph"
	"github.com/nucleus/village-api/internal/config"
	"github.com/nucleus/village-api/internal/database"
	"github.com/nucleus/village-api/internal/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection
	db, err := database.NewClient(ctx, cfg.DBDriver, cfg.DSN(), database.Options{
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer db.Close()

	// Initialize GraphQL schema
	resolver := graph.NewResolver(db, logger)
	schema, err := graph.NewSchema(resolver,
		graphql.MaxParallelism(cfg.MaxParallelism),
		graphql.Logger(&logging.PanicLogger{Logger: logger}),
	)
	if err != nil {
		logger.Fatal("failed to parse graphql schema", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(schema, db, cfg.CORSAllowedOrigins, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down...")
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 30*time.Second)
		defer done()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("village-api listening",
		zap.String("addr", server.Addr),
		zap.String("graphql", "/graphql"),
		zap.String("driver", cfg.DBDriver),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
