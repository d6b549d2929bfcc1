package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"unit-converter/internal/config"
	"unit-converter/internal/conversion"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	api               huma.API
	logger            *slog.Logger
	conversionService conversion.Service
	cfg               *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Create Huma API on top of the Gin router
	humaConfig := huma.DefaultConfig("Unit Converter API", "1.0.0")
	humaConfig.Info.Description = "Converts values between units of length, weight, temperature and time"
	humaConfig.Servers = []*huma.Server{
		{URL: "http://localhost" + cfg.GetServerAddr(), Description: "Development server"},
	}
	// Swagger UI is served by gin-swagger, see registerRoutes
	humaConfig.DocsPath = ""

	app := &App{
		router:            router,
		api:               humagin.New(router, humaConfig),
		logger:            logger,
		conversionService: conversion.NewConversionService(logger),
		cfg:               cfg,
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app
}

// shutdownTimeout bounds how long in-flight requests may take once Run is cancelled
const shutdownTimeout = 5 * time.Second

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server", "addr", addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
