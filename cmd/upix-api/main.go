package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jiftechnify/upix-api/internal/config"
	"github.com/jiftechnify/upix-api/internal/gcs"
	"github.com/jiftechnify/upix-api/internal/httpserver"
	"github.com/jiftechnify/upix-api/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init("upix-api", cfg.LogLevel)
	ctx := context.Background()

	store, err := gcs.NewClient(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile,
		time.Duration(cfg.UploadTimeoutSeconds)*time.Second)
	if err != nil {
		logger.Error(ctx, "failed to create storage client", err)
		log.Fatalf("failed to create storage client: %v", err)
	}
	defer store.Close()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpserver.NewServer(cfg, store).Handler(),
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info(ctx, "received shutdown signal", logger.Fields{"signal": sig.String()})

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "server shutdown failed", err)
		}
	}()

	logger.Info(ctx, "upix api listening", logger.Fields{
		"port":   cfg.Port,
		"bucket": cfg.GCSBucket,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(ctx, "server error", err)
		log.Fatalf("server error: %v", err)
	}

	logger.Info(ctx, "server shutdown complete")
}
