package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/voiceweather/weather-tool/internal/api/http"
	"github.com/voiceweather/weather-tool/internal/config"
	"github.com/voiceweather/weather-tool/internal/tool"
	"github.com/voiceweather/weather-tool/internal/weather"
	"github.com/voiceweather/weather-tool/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound weather API calls. The client
	// timeout backstops the per-request context deadline.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Two-stage lookup pipeline: geocoding then current conditions.
	geocoder := providers.NewOpenMeteoGeocoder(httpClient, cfg.GeocodingBaseURL)
	fetcher := providers.NewOpenMeteoConditions(httpClient, cfg.ForecastBaseURL)
	service := weather.NewService(geocoder, fetcher)

	// Register the lookup pipeline as an agent tool.
	registry, err := tool.NewRegistry(tool.NewWeatherTool(service, cfg.DefaultUnits))
	if err != nil {
		log.Fatalf("failed to build tool registry: %v", err)
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-tool",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-tool",
		})
	})

	// Tool discovery and invocation routes.
	httpapi.RegisterRoutes(app, registry)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
