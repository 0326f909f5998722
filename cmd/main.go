package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"takeabite/internal/api"
	"takeabite/internal/catalog"
	"takeabite/internal/config"
	"takeabite/internal/monitoring"
	"takeabite/internal/orders"
	"takeabite/internal/seed"
	"takeabite/internal/storage"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
	devLog      = flag.Bool("dev", false, "Use development logging")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Metrics.Port = *metricsPort
	}

	logger, err := newLogger(cfg, *devLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	store, err := storage.Open(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	seedData := seed.Default()
	if err := store.Seed(seedData); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	cat := catalog.NewRepository(store, seedData.Cookies, logger)
	ord := orders.NewRepository(store, seedData.Orders, orders.Config{
		PickupLead:        time.Duration(cfg.Orders.PickupLeadMinutes) * time.Minute,
		DeliveryLead:      time.Duration(cfg.Orders.DeliveryLeadMinutes) * time.Minute,
		StrictTransitions: cfg.Orders.StrictTransitions,
		UUIDIdentifiers:   cfg.Orders.UUIDIdentifiers,
	}, logger)

	metrics := monitoring.NewMetrics()
	server := api.NewServer(cat, ord, metrics, store, seedData, cfg.Business, logger)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: server.Router(),
	}

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: metrics.Handler(),
		}
		go func() {
			logger.Info("Starting metrics server", zap.Int("port", cfg.Metrics.Port))
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				logger.Error("Metrics server error", zap.Error(err))
			}
		}()
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("API server shutdown error", zap.Error(err))
		}
		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("Metrics server shutdown error", zap.Error(err))
			}
		}
	}()

	logger.Info("Starting API server",
		zap.String("business", cfg.Business.Name),
		zap.Int("port", cfg.Server.Port))
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func newLogger(cfg config.Config, dev bool) (*zap.Logger, error) {
	if dev || cfg.Log.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
