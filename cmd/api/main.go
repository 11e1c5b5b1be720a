package main

// @title what3words Geocoder API
// @version 1.0.0
// @description Converts between coordinates and three word addresses, suggests addresses for partial input and recognises address shaped text.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/w3w-geocoder/docs"
	"github.com/w3w-geocoder/internal/config"
	httpDelivery "github.com/w3w-geocoder/internal/delivery/http"
	"github.com/w3w-geocoder/internal/delivery/http/handler"
	"github.com/w3w-geocoder/internal/infrastructure/what3words"
	"github.com/w3w-geocoder/internal/pkg/logger"
	"github.com/w3w-geocoder/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting w3w-geocoder")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("base_url", cfg.What3words.BaseURL),
	)

	// 3. what3words client
	client, err := what3words.NewClient(cfg.What3words.APIKey, log.Named("what3words"),
		what3words.WithBaseURL(cfg.What3words.BaseURL),
		what3words.WithLegacyBaseURL(cfg.What3words.LegacyBaseURL),
		what3words.WithReferer(cfg.What3words.Referer),
		what3words.WithHeaders(cfg.What3words.Headers),
		what3words.WithTimeout(cfg.What3words.Timeout),
	)
	if err != nil {
		log.Fatal("Failed to create what3words client", zap.Error(err))
	}

	// 4. Use cases
	geocoderUC := usecase.NewGeocoderUseCase(client, log)
	addressUC := usecase.NewAddressUseCase(client, log)

	// 5. Handlers
	geocoderHandler := handler.NewGeocoderHandler(geocoderUC, log)
	addressHandler := handler.NewAddressHandler(addressUC, log)
	demoHandler, err := handler.NewDemoHandler(geocoderUC, log)
	if err != nil {
		log.Warn("Failed to initialize demo page, serving API only", zap.Error(err))
	}

	server := httpDelivery.NewServer(cfg, log, geocoderHandler, addressHandler, demoHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
