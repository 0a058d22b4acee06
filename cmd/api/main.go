package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sialkot-shop/internal/config"
	"sialkot-shop/internal/content"
	"sialkot-shop/internal/database"
	"sialkot-shop/internal/logger"
	"sialkot-shop/internal/server"
	"sialkot-shop/migrations"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

// newGenerator falls back to the always-failing generator without an API
// key, so every content request serves its fixed text
func newGenerator(cfg config.GenAIConfig, log *zap.Logger) content.Generator {
	if cfg.APIKey == "" {
		log.Warn("GENAI_API_KEY not set, content generation will serve fallback text")
		return content.Unavailable{}
	}

	generator, err := content.NewGenAIGenerator(context.Background(), cfg.APIKey, cfg.Model)
	if err != nil {
		log.Error("Failed to create content generator, serving fallback text", zap.Error(err))
		return content.Unavailable{}
	}
	return generator
}

func main() {
	// Missing .env is fine outside local development
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("catalog_backend", cfg.Server.CatalogBackend),
	)

	var dbService database.Service
	if cfg.Server.CatalogBackend == config.BackendPostgres {
		dbService, err = database.New(cfg.Database)
		if err != nil {
			log.Fatal("Failed to open database", zap.Error(err))
		}

		// Check database health
		health := dbService.Health()
		log.Info("Database health check", zap.Any("health", health))

		// Run migrations
		if err := database.RunMigrations(dbService.DB(), migrations.FS, log); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
		log.Info("Database migrations completed successfully")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr()))
		}
		log.Info("Redis connected, rate limiting enabled",
			zap.Int("requests", cfg.RateLimit.Requests),
			zap.Duration("window", cfg.RateLimit.Window),
		)
	}

	// Create server
	srv, err := server.NewServer(cfg, log, dbService, redisClient, newGenerator(cfg.GenAI, log))
	if err != nil {
		log.Fatal("Failed to create server", zap.Error(err))
	}

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
