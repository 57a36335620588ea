// Package main is the entry point for the offer normalization service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	offerhttp "github.com/travel-checkout/offer-normalization-engine/internal/adapter/http"
	"github.com/travel-checkout/offer-normalization-engine/internal/adapter/http/middleware"
	"github.com/travel-checkout/offer-normalization-engine/internal/adapter/source/fixture"
	"github.com/travel-checkout/offer-normalization-engine/internal/config"
	"github.com/travel-checkout/offer-normalization-engine/internal/infrastructure/logger"
	"github.com/travel-checkout/offer-normalization-engine/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize the global logger with config
	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "offer-normalization",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("currency", cfg.Display.PreferredCurrency).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupRoutes wires the sources, usecases and HTTP handler.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	// File-backed sources standing in for remote pricing and ratings clients
	flightSource := fixture.NewFlightSource(cfg.Fixtures.FlightOffersPath)
	hotelSource := fixture.NewHotelSource(cfg.Fixtures.HotelOffersPath)
	ratingsSource := fixture.NewRatingsSource(cfg.Fixtures.RatingsPath)

	assembler := usecase.NewCheckoutAssembler(flightSource, hotelSource, ratingsSource, &usecase.AssemblerConfig{
		GlobalTimeout: cfg.Timeouts.GlobalAssembly,
		SourceTimeout: cfg.Timeouts.PerSource,
	})

	transformer := usecase.NewOfferTransformer(nil)
	aggregator := usecase.NewRequirementsAggregator()

	defaults := usecase.TransformOptions{
		PreferredCurrency: cfg.Display.PreferredCurrency,
		Locale:            cfg.Display.Locale,
	}

	handler := offerhttp.NewOfferHandler(transformer, aggregator, assembler, defaults)
	offerhttp.RegisterRoutes(e, handler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
