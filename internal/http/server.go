package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	recordsHTTP "github.com/allisson/svcguard/internal/records/http"
)

// RouterOptions carries the middleware and handlers wired into the API router.
// Nil middleware entries are skipped (feature disabled).
type RouterOptions struct {
	Logger                 *slog.Logger
	CORSEnabled            bool
	CORSAllowOrigins       string
	MetricsMiddleware      gin.HandlerFunc
	VerificationMiddleware gin.HandlerFunc
	RateLimitMiddleware    gin.HandlerFunc
	RecordHandler          *recordsHTTP.RecordHandler
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates the API server with all routes registered.
//
// All /v1 routes sit behind the signature verification middleware: every
// inbound request must carry valid x-service-id, x-request-timestamp and
// x-request-signature headers. Health endpoints stay outside the group so
// orchestrators can probe without credentials.
func NewServer(host string, port int, opts RouterOptions) *Server {
	router := gin.New()
	router.Use(RecoveryMiddleware(opts.Logger))
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(opts.Logger))

	if opts.MetricsMiddleware != nil {
		router.Use(opts.MetricsMiddleware)
	}

	if corsMiddleware := createCORSMiddleware(opts.CORSEnabled, opts.CORSAllowOrigins, opts.Logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", HealthHandler())

	v1 := router.Group("/v1")
	v1.Use(opts.VerificationMiddleware)
	if opts.RateLimitMiddleware != nil {
		v1.Use(opts.RateLimitMiddleware)
	}

	if opts.RecordHandler != nil {
		v1.POST("/records", opts.RecordHandler.CreateHandler)
		v1.GET("/records", opts.RecordHandler.ListHandler)
		v1.GET("/records/:id", opts.RecordHandler.GetHandler)
		v1.PUT("/records/:id", opts.RecordHandler.UpdateHandler)
		v1.DELETE("/records/:id", opts.RecordHandler.DeleteHandler)
	}

	return &Server{
		router: router,
		logger: opts.Logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the API HTTP server. The readiness endpoint flips to
// not-ready once ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.router.GET("/ready", ReadinessHandler(ctx))

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
