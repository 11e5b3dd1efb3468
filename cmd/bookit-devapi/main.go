// Command bookit-devapi serves the admin and manager endpoints from a local
// database so the frontend can run without the real backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bookit-web/config"
	"bookit-web/internal/api"
	"bookit-web/internal/db"
	"bookit-web/internal/logging"
	"bookit-web/internal/store"
)

func main() {
	port := flag.Int("port", 8081, "port to listen on")
	flag.Parse()

	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, "bookit-devapi")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	appStore := store.NewGormStore(gormDB)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: api.NewRouter(appStore, cfg, logger),
	}

	go func() {
		logger.Info("dev API starting", zap.Int("port", *port), zap.String("driver", cfg.Database.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("HTTP server Shutdown", zap.Error(err))
	}
	logger.Info("dev API stopped")
}
