package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	handlers "github.com/GriffinCanCode/AppBlueprint/internal/api/http"
	"github.com/GriffinCanCode/AppBlueprint/internal/api/middleware"
	"github.com/GriffinCanCode/AppBlueprint/internal/gemini"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/config"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/tracing"
)

// BlueprintRoute is the path of the blueprint endpoint.
const BlueprintRoute = "/api/generate-blueprint"

// Server wraps the HTTP server and dependencies
type Server struct {
	router     *gin.Engine
	handler    http.Handler
	httpServer *http.Server
	gemini     *gemini.Client
	tracer     *tracing.Tracer
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewFromLevel(cfg.Logging.Level, cfg.Logging.Development)

	logger.Info("Initializing App Blueprint Server",
		zap.String("port", cfg.Server.Port),
		zap.String("gemini_model", cfg.Gemini.Model),
		zap.Bool("gemini_configured", cfg.Gemini.Configured()),
	)
	if !cfg.Gemini.Configured() {
		logger.Warn("GEMINI_API_KEY not set; blueprint requests will fail until it is configured")
	}

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("app-blueprint", logger.Logger)

	var breaker *resilience.Breaker
	if cfg.Gemini.BreakerEnabled {
		breaker = gemini.NewBreaker(func(name string, from, to resilience.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		})
		logger.Info("Gemini circuit breaker enabled")
	}

	client := gemini.NewClient(gemini.Options{
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
		Breaker: breaker,
		Metrics: metrics,
		Tracer:  tracer,
		Logger:  logger,
	})

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.CORSConfigFrom(cfg.CORS)))

	h := handlers.NewHandlers(cfg.Gemini, client, metrics, logger)

	// Register routes
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/metrics", h.Metrics)
	router.Any(BlueprintRoute, h.GenerateBlueprint)

	// Any only covers gin's standard methods; the rest land here and still
	// get the blueprint handler's 405.
	router.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == BlueprintRoute {
			h.GenerateBlueprint(c)
		}
	})

	var handler http.Handler = router
	if cfg.Server.GzipEnabled {
		handler = gzhttp.GzipHandler(router)
	}

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		handler: handler,
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		gemini:  client,
		tracer:  tracer,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Handler returns the full middleware and routing stack.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run starts the HTTP server and blocks until it stops. A server stopped by
// Shutdown returns nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}

// Close releases the tracer and flushes the logger
func (s *Server) Close() error {
	s.tracer.Close()

	// Sync logger before exit
	_ = s.logger.Sync()

	return nil
}
