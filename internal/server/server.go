package server

import (
	"fmt"
	"net/http"
	"time"

	"club-merch/internal/config"
	custommiddleware "club-merch/internal/middleware"
	"club-merch/internal/repository"
	"club-merch/internal/service"
	"club-merch/internal/storage"
	"club-merch/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.CartSession)

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Session storage: Redis when configured, otherwise process memory.
	var redisClient *redis.Client
	var store storage.Store
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = storage.NewRedisStore(redisClient)
		logger.Info("Using Redis session storage", zap.String("addr", cfg.Redis.Addr))
	} else {
		store = storage.NewMemoryStore()
		logger.Info("Using in-memory session storage")
	}

	// Initialize repositories over the demo dataset
	productRepo := repository.NewProductRepository(repository.SeedProducts(), repository.SeedCategories())
	clubRepo := repository.NewClubRepository(repository.SeedClubs())
	orderRepo := repository.NewOrderRepository(repository.SeedOrders())
	credentialRepo, err := repository.NewCredentialRepository(repository.SeedCredentials())
	if err != nil {
		return nil, fmt.Errorf("failed to build credential table: %w", err)
	}

	// Initialize services
	cartService := service.NewCartService(store, logger)
	submitter := service.NewSimulatedSubmitter(cfg.Checkout.ConfirmDelay)
	checkoutService := service.NewCheckoutService(store, cartService, submitter, cfg.Checkout.ShippingCost, logger)
	authService := service.NewAuthService(credentialRepo, cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.LoginDelay)
	analyticsService := service.NewAnalyticsService(orderRepo, productRepo)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService, logger)
	catalogHandler := transport.NewCatalogHandler(productRepo, clubRepo, logger)
	cartHandler := transport.NewCartHandler(cartService, productRepo, logger)
	checkoutHandler := transport.NewCheckoutHandler(checkoutService, logger)
	dashboardHandler := transport.NewDashboardHandler(analyticsService, clubRepo, cfg.Server.PublicBaseURL, time.Now, logger)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(authService, logger)

	// Login rate limiting needs Redis; without it the route is unlimited.
	var rateLimit func(http.Handler) http.Handler
	if redisClient != nil {
		rateLimit = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "ratelimit:login",
		}, logger)
	}

	// Register routes
	authHandler.RegisterRoutes(router, authMiddleware, rateLimit)
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	dashboardHandler.RegisterRoutes(router, authMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  redisClient,
	}

	return server, nil
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
