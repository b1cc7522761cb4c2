package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdash/internal/config"
	"salesdash/internal/logger"
	"salesdash/internal/server"
	"salesdash/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  logger.ParseLogLevel(cfg.LogLevel),
		Format: logger.ParseLogFormat(cfg.LogFormat),
		Output: os.Stdout,
	}))

	mode := storage.DeploymentLocal
	if cfg.GCSBucket != "" {
		mode = storage.DeploymentGCS
	}

	logger.Infof("Starting Sales Dashboard Service on port %s", cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	if mode == storage.DeploymentLocal {
		logger.Infof("Local reports dir: %s", cfg.LocalReportsDir)
	} else {
		logger.Infof("GCS bucket: %s", cfg.GCSBucket)
	}

	srv, err := server.NewServer(ctx, cfg, mode)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // rendering can take a while on big tables
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
