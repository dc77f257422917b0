// Package server boots every subsystem and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/config"
	"github.com/shashiranjanraj/shinyflakes/internal/kernel"
	"github.com/shashiranjanraj/shinyflakes/pkg/cache"
	"github.com/shashiranjanraj/shinyflakes/pkg/database"
	"github.com/shashiranjanraj/shinyflakes/pkg/logger"
	"github.com/shashiranjanraj/shinyflakes/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Boot loads config and connects every backing service.
// Redis, Mongo log shipping and S3 are optional: a failure there degrades
// features but does not stop the process.
func Boot() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, caching and token revocation degraded", "error", err)
	}

	storage.Connect()

	if uri := config.LogMongoURI(); uri != "" {
		if _, err := logger.EnableMongo(uri, "shinyflakes", "logs"); err != nil {
			logger.Warn("server: mongo log shipping disabled", "error", err)
		}
	}

	if err := database.DB.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		return err
	}

	return nil
}

// Start boots the application and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := Boot(); err != nil {
		return err
	}

	httpKernel := kernel.NewHTTPKernel()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           httpKernel.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(ctx)
}
