package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	api "github.com/GriffinCanCode/panex/internal/api/http"
	"github.com/GriffinCanCode/panex/internal/api/middleware"
	"github.com/GriffinCanCode/panex/internal/api/ws"
	"github.com/GriffinCanCode/panex/internal/domain/service"
	"github.com/GriffinCanCode/panex/internal/fsops"
	"github.com/GriffinCanCode/panex/internal/infrastructure/config"
	"github.com/GriffinCanCode/panex/internal/infrastructure/logging"
	"github.com/GriffinCanCode/panex/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/panex/internal/launcher"
	"github.com/GriffinCanCode/panex/internal/providers/filesystem"
	"github.com/GriffinCanCode/panex/internal/providers/system"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
)

// Server wraps the HTTP server and dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	registry   *service.Registry
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, version string) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Info("Initializing PanEx server",
		zap.String("version", version),
		zap.String("addr", cfg.Addr()),
		zap.Bool("no_clobber", cfg.Engine.NoClobber),
		zap.Strings("terminals", cfg.Launcher.Terminals),
	)

	metrics := monitoring.NewMetrics()

	engine := fsops.New(
		fsops.Config{NoClobber: cfg.Engine.NoClobber},
		fsops.WithLogger(logger.Component("fsops")),
	)
	sysLauncher := launcher.New(
		launcher.Config{Terminals: cfg.Launcher.Terminals},
		logger.Component("launcher"),
	)
	sysProvider := system.NewProvider(version, logger.Component("ui"))

	registry := service.NewRegistry()
	if err := registerProviders(registry,
		filesystem.NewProvider(engine, sysLauncher, metrics, logger.Component("filesystem")),
		sysProvider,
	); err != nil {
		return nil, err
	}
	stats := registry.Stats()
	logger.Info("Registered service providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger.Component("http")))
	router.Use(monitoring.Middleware(metrics))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	}
	router.Use(middleware.CORS(corsCfg))
	logger.Info("CORS configured", zap.Strings("origins", corsCfg.AllowOrigins))

	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	handlers := api.NewHandlers(registry, filesystem.ToolForCommand, api.Options{
		Metrics: metrics,
		System:  sysProvider,
		Logger:  logger.Component("http"),
		Version: version,
	})
	handlers.RegisterRoutes(router)

	wsHandler := ws.NewHandler(registry, filesystem.ToolForCommand, metrics, logger.Component("ws")).
		AllowOrigins(middleware.OriginChecker(corsCfg.AllowOrigins))
	router.GET("/ws", wsHandler.HandleConnection)

	var handler http.Handler = router
	if cfg.Server.Compression {
		handler = compress(router)
	}

	logger.Info("Server initialized successfully")

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
		router:   router,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Handler returns the root HTTP handler, including compression
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Logger returns the server logger
func (s *Server) Logger() *logging.Logger {
	return s.logger
}

// Run starts the HTTP server and blocks until it stops.
// It returns nil after a graceful Shutdown.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for active requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	// Sync fails on stderr/stdout for some platforms; nothing to do about it
	_ = s.logger.Sync()
	return err
}

// compress gzips regular responses. WebSocket upgrades bypass the wrapper
// since the connection is hijacked.
func compress(next http.Handler) http.Handler {
	gz := gzhttp.GzipHandler(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if websocket.IsWebSocketUpgrade(r) {
			next.ServeHTTP(w, r)
			return
		}
		gz.ServeHTTP(w, r)
	})
}

func registerProviders(registry *service.Registry, providers ...service.Provider) error {
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("failed to register %s provider: %w", p.Definition().ID, err)
		}
	}
	return nil
}
