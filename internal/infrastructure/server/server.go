package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "orbitbuilder/internal/api/http"
	"orbitbuilder/internal/api/middleware"
	"orbitbuilder/internal/domain/blueprint"
	"orbitbuilder/internal/infrastructure/config"
	"orbitbuilder/internal/infrastructure/gemini"
	"orbitbuilder/internal/infrastructure/logging"
	"orbitbuilder/internal/infrastructure/monitoring"
	"orbitbuilder/internal/infrastructure/tracing"
)

// Server wraps the HTTP router and its dependencies.
type Server struct {
	router   *gin.Engine
	composer *blueprint.Composer
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance.
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing blueprint builder",
		zap.String("port", cfg.Server.Port),
		zap.Bool("demo_mode", cfg.DemoMode),
		zap.Bool("remote_configured", cfg.Gemini.Configured()),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("builder", logger.Logger)

	// Remote generation is optional: a missing credential or a client
	// construction error leaves the composer on the template path.
	var generator blueprint.Generator
	if cfg.Gemini.Configured() {
		client, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey)
		if err != nil {
			logger.Warn("Gemini client unavailable, template mode only", zap.Error(err))
		} else {
			generator = gemini.NewAdapter(client, cfg.Gemini.Models).
				WithLogger(logger.Logger).
				WithMetrics(metrics)
			logger.Info("Remote generation enabled",
				zap.Strings("models", cfg.Gemini.Models),
			)
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, template mode only")
	}

	composer := blueprint.NewComposer(generator).WithLogger(logger.Logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	handlers := httpapi.NewHandlers(composer, cfg, metrics)

	router.GET("/", handlers.Index)
	router.GET("/animation", handlers.Animation)
	router.POST("/blueprint", handlers.ProcessBlueprint)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		composer: composer,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close flushes buffered log entries.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}
