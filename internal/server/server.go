package server

import (
	apisetup "boatshow-server/internal/api"
	"boatshow-server/internal/bootstrap"
	"boatshow-server/internal/config"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/workers"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server owns the HTTP listener and, when enabled, an in-process notification dispatcher
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
	dispatcher workers.Consumer
	serveErr   chan error
}

func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config:   cfg,
		deps:     deps,
		logger:   logger,
		serveErr: make(chan error, 1),
	}
}

// Setup builds the router: CORS, request logging, then every API route
func (s *Server) Setup() {
	if os.Getenv("GO_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	s.router = gin.New()
	// multipart bodies above this spill to temp files instead of memory
	s.router.MaxMultipartMemory = s.config.Storage.UploadMaxBytes

	s.router.Use(cors.New(s.corsConfig()))
	s.router.Use(observability.Middleware(s.logger))

	api := apisetup.New(s.router.Group("/"), apisetup.Handlers{
		Auth:          s.deps.AuthHandler,
		AdminUser:     s.deps.AdminUserHandler,
		Submission:    s.deps.SubmissionHandler,
		PromoCode:     s.deps.PromoCodeHandler,
		Upload:        s.deps.UploadHandler,
		EmailTemplate: s.deps.EmailTemplateHandler,
		EmailCampaign: s.deps.EmailCampaignHandler,
	}, s.deps.RateLimiter, s.deps.Captcha)
	api.RegisterRoutes()
}

func (s *Server) corsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Turnstile-Token", observability.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{
		observability.RequestIDHeader,
		"Content-Disposition",
		"Retry-After",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
	}
	corsConfig.AllowOrigins = []string{s.config.Services.WebAppURI}
	if os.Getenv("GO_ENV") != "production" {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, "http://localhost:3000", "http://localhost:5173")
	}
	return corsConfig
}

// Handler returns the configured router. Setup must be called first.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening and, if configured, starts draining the notification queue
func (s *Server) Start(ctx context.Context) error {
	if s.config.Dispatcher.InProcess {
		s.dispatcher = workers.NewPoller(workers.PollerConfig{
			Interval:   s.config.Dispatcher.Interval,
			BatchSize:  s.config.Dispatcher.BatchSize,
			NumWorkers: s.config.Dispatcher.Workers,
			JobTimeout: time.Minute,
		}, s.deps.Dispatcher, s.deps.Dispatcher, s.logger)

		go func() {
			if err := s.dispatcher.Start(ctx); err != nil {
				s.logger.Error(ctx, "notification dispatcher stopped with error", err)
			}
		}()
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr <- err
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT/SIGTERM or a listener failure, then
// stops accepting requests, finishes in-flight deliveries and releases dependencies
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var listenErr error
	select {
	case sig := <-quit:
		s.logger.Info(ctx, fmt.Sprintf("Received %s, shutting down", sig))
	case listenErr = <-s.serveErr:
		s.logger.Error(ctx, "server failed", listenErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := s.httpServer.Shutdown(shutdownCtx)
	if s.dispatcher != nil {
		s.dispatcher.Stop()
	}
	s.deps.Cleanup()

	if listenErr != nil {
		return listenErr
	}
	if shutdownErr != nil {
		return fmt.Errorf("server forced to shutdown: %w", shutdownErr)
	}
	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
