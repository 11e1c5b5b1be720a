package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/config"
	"github.com/w3w-geocoder/internal/delivery/http/handler"
	"github.com/w3w-geocoder/internal/delivery/http/middleware"
	"github.com/w3w-geocoder/internal/pkg/metrics"
)

// Server - HTTP server for the geocoder API and the demo page
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	geocoderHandler *handler.GeocoderHandler
	addressHandler  *handler.AddressHandler
	demoHandler     *handler.DemoHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	geocoderHandler *handler.GeocoderHandler,
	addressHandler *handler.AddressHandler,
	demoHandler *handler.DemoHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "w3w-geocoder",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.What3words.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		geocoderHandler: geocoderHandler,
		addressHandler:  addressHandler,
		demoHandler:     demoHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", metrics.Handler())

	if s.demoHandler != nil {
		s.app.Get("/", s.demoHandler.Index)
	}

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/convert-to-3wa", s.geocoderHandler.ConvertTo3wa)
	api.Get("/convert-to-coordinates", s.geocoderHandler.ConvertToCoordinates)
	api.Post("/autosuggest", s.geocoderHandler.Autosuggest)
	api.Get("/grid-section", s.geocoderHandler.GridSection)
	api.Get("/available-languages", s.geocoderHandler.AvailableLanguages)

	addr := api.Group("/address")
	addr.Get("/possible", s.addressHandler.Possible)
	addr.Get("/find", s.addressHandler.Find)
	addr.Get("/valid", s.addressHandler.Valid)

	legacy := api.Group("/legacy")
	legacy.Post("/autosuggest", s.addressHandler.LegacyAutosuggest)
	legacy.Post("/autosuggest-ml", s.addressHandler.LegacyAutosuggestML)
	legacy.Post("/standardblend", s.addressHandler.LegacyStandardBlend)
	legacy.Post("/standardblend-ml", s.addressHandler.LegacyStandardBlendML)
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
