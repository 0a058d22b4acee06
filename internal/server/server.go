package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sialkot-shop/internal/checkout"
	"sialkot-shop/internal/config"
	"sialkot-shop/internal/content"
	"sialkot-shop/internal/database"
	custommiddleware "sialkot-shop/internal/middleware"
	"sialkot-shop/internal/repository"
	"sialkot-shop/internal/service"
	"sialkot-shop/internal/session"
	"sialkot-shop/internal/share"
	"sialkot-shop/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionSweepInterval = time.Minute

type Server struct {
	*http.Server
	config   *config.Config
	logger   *zap.Logger
	db       database.Service
	redis    *redis.Client
	sessions *session.Store
	stop     context.CancelFunc
}

// NewServer wires the storefront. db may be nil when the catalog is kept in
// memory; redisClient may be nil, which disables rate limiting.
func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service, redisClient *redis.Client, generator content.Generator) (*Server, error) {
	// Initialize repositories
	var (
		productRepo  repository.ProductRepository
		categoryRepo repository.CategoryRepository
	)
	switch cfg.Server.CatalogBackend {
	case config.BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("catalog backend %q requires a database", cfg.Server.CatalogBackend)
		}
		productRepo = repository.NewProductRepository(db.DB())
		categoryRepo = repository.NewCategoryRepository(db.DB())
	case config.BackendMemory, "":
		productRepo = repository.NewMemoryProductRepository()
		categoryRepo = repository.NewMemoryCategoryRepository()
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Server.CatalogBackend)
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSeed()
	if err := repository.Seed(seedCtx, productRepo, categoryRepo); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	gateway := content.NewGateway(generator, cfg.Shop.Name, cfg.GenAI.Timeout, logger)
	sharer := share.Sharer{
		ShopName: cfg.Shop.Name,
		ShopURL:  cfg.Shop.URL,
		Tagline:  cfg.Shop.Tagline,
	}
	messenger := checkout.Messenger{
		ShopName:  cfg.Shop.Name,
		BaseURL:   cfg.Shop.MessagingBaseURL,
		Recipient: cfg.Shop.MessagingRecipient,
	}

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, categoryRepo, gateway)
	cartService := service.NewCartService(productRepo)
	checkoutService := service.NewCheckoutService(messenger, logger)

	// Visitor sessions
	sessions := session.NewStore(cfg.Session.IdleTimeout, logger)
	cookies := custommiddleware.NewCookieStore(cfg.Session.Secret, cfg.Session.IdleTimeout, cfg.Server.Env == "production")
	ctx, stop := context.WithCancel(context.Background())
	go sessions.Run(ctx, sessionSweepInterval)

	router := chi.NewRouter()

	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.SessionMiddleware(cookies, sessions, logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]interface{}{"status": "ok"}
		if db != nil {
			health := db.Health()
			status["database"] = health
			if health["status"] != "up" {
				status["status"] = "degraded"
			}
		}
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				status["redis"] = "down"
				status["status"] = "degraded"
			} else {
				status["redis"] = "up"
			}
		}
		custommiddleware.RespondWithJSON(w, http.StatusOK, status)
	})

	// Content generation is the only expensive route family
	var generateLimiter func(http.Handler) http.Handler
	if redisClient != nil {
		generateLimiter = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "ratelimit:generate",
		}, logger)
	}

	// Initialize handlers and register routes
	transport.NewCatalogHandler(catalogService, sharer, cfg.Server.UploadMaxBytes, logger).RegisterRoutes(router, generateLimiter)
	transport.NewCartHandler(cartService, logger).RegisterRoutes(router)
	transport.NewCheckoutHandler(checkoutService, logger).RegisterRoutes(router)
	transport.NewContentHandler(gateway, logger).RegisterRoutes(router, generateLimiter)
	transport.NewShareHandler(sharer, logger).RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		config:   cfg,
		logger:   logger,
		db:       db,
		redis:    redisClient,
		sessions: sessions,
		stop:     stop,
	}

	return server, nil
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources", zap.Int("sessions", s.sessions.Len()))

	s.stop()

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
