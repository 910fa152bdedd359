package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchen-core/internal/config"
	"kitchen-core/internal/database"
	"kitchen-core/internal/handler"
	"kitchen-core/internal/repository"
	"kitchen-core/internal/router"
	"kitchen-core/internal/screener"
	"kitchen-core/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting kitchen-core API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	menuRepo := repository.NewMenuRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	tableRepo := repository.NewTableRepository(pool, logger)

	// Initialize word list loader with S3 and local fallback
	fileLoader := screener.NewFileLoader(logger)
	var wordListLoader screener.Loader

	if cfg.Screener.S3Enabled {
		s3Loader, err := screener.NewS3Loader(ctx, cfg.Screener.S3Bucket, cfg.Screener.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			wordListLoader = fileLoader
		} else {
			wordListLoader = screener.NewFallbackLoader(s3Loader, fileLoader, cfg.Screener.S3Prefix, true, logger)
		}
	} else {
		wordListLoader = fileLoader
		logger.Info().Msg("using local file system for word list files (S3 disabled)")
	}

	// Initialize name screener
	screenerConfig := &screener.Config{FilePaths: cfg.Screener.FilePaths}
	nameScreener, err := screener.New(ctx, screenerConfig, wordListLoader, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize name screener: %w", err)
	}

	// Initialize services
	productService := service.NewProductService(productRepo, menuRepo, nameScreener, logger)
	menuService := service.NewMenuService(menuRepo, productRepo, nameScreener, logger)
	orderService := service.NewOrderService(orderRepo, menuRepo, tableRepo, logger)
	tableService := service.NewTableService(tableRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	menuHandler := handler.NewMenuHandler(menuService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	tableHandler := handler.NewTableHandler(tableService, logger)

	// Initialize router
	mux := router.New(productHandler, menuHandler, orderHandler, tableHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
