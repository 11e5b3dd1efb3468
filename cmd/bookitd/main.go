package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"bookit-web/config"
	"bookit-web/internal/apiclient"
	"bookit-web/internal/logging"
	"bookit-web/internal/probe"
	"bookit-web/internal/web"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, "bookitd")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	logger.Info("configuration loaded", zap.String("path", configPath))

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		registerer prometheus.Registerer
		gatherer   prometheus.Gatherer
	)
	if cfg.Server.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		registerer, gatherer = reg, reg
	}

	client, err := apiclient.New(cfg.API, logger, apiclient.WithRegisterer(registerer))
	if err != nil {
		logger.Fatal("failed to create API client", zap.Error(err))
	}
	logger.Info("API client ready",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("endpoint_style", cfg.API.EndpointStyle),
		zap.String("data_source", string(client.DataSource())),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Check the backend in the background so the dashboard can show it.
	backendProbe := probe.NewService(client, cfg.API.ProbeInterval, cfg.API.Timeout, logger, registerer)
	go backendProbe.Run(ctx)

	router, err := web.NewRouter(web.NewServer(client, cfg, logger).WithProbe(backendProbe), gatherer)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Info("shutdown signal received, stopping services")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("HTTP server Shutdown", zap.Error(err))
	}

	logger.Info("server gracefully stopped")
}
