// file: internal/server/server.go
// version: 2.1.0
// guid: 4c5d6e7f-8a9b-0c1d-2e3f-4a5b6c7d8e9f

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/course-group-finder/internal/finder"
	"github.com/jdfalk/course-group-finder/internal/metrics"
	"github.com/jdfalk/course-group-finder/internal/realtime"
	"github.com/jdfalk/course-group-finder/internal/server/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is reported by the health endpoint.
var Version = "dev"

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	finder     *finder.Finder
	hub        *realtime.EventHub
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port               string
	Host               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	RateLimitPerMinute int // 0 disables rate limiting
	RateLimitBurst     int
	MaxBodyBytes       int64
}

// GetDefaultServerConfig returns the configuration used when nothing is set.
func GetDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:               "8080",
		Host:               "localhost",
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       15 * time.Second,
		IdleTimeout:        60 * time.Second,
		RateLimitPerMinute: 600,
		RateLimitBurst:     60,
		MaxBodyBytes:       middleware.DefaultBodyLimit,
	}
}

// NewServer creates a new server instance answering queries from f. Reload
// outcomes of f are pushed to SSE clients through hub.
func NewServer(f *finder.Finder, hub *realtime.EventHub, cfg ServerConfig) *Server {
	router := gin.New()

	// Set up middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(requestLogger())
	router.Use(corsMiddleware())
	router.Use(middleware.MaxRequestBodySize(cfg.MaxBodyBytes))
	if cfg.RateLimitPerMinute > 0 {
		router.Use(middleware.NewClientLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst,
			"/metrics", "/api/v1/health", "/api/v1/events").Middleware())
	}

	// Register metrics (idempotent)
	metrics.Register()

	if hub == nil {
		hub = realtime.NewEventHub()
	}
	server := &Server{
		router: router,
		finder: f,
		hub:    hub,
	}
	f.OnReload(server.publishReload)

	server.setupRoutes()

	return server
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// publishReload forwards a finder reload outcome to SSE clients.
func (s *Server) publishReload(ev finder.ReloadEvent) {
	version := ""
	if ev.Snapshot != nil {
		version = ev.Snapshot.Version
	}
	if ev.Err != nil {
		s.hub.SendCatalogReloadFailed(version, ev.Err)
		return
	}
	cat := ev.Snapshot.Catalog
	s.hub.SendCatalogReloaded(version, cat.Len(), len(cat.AllCourses()), len(ev.Snapshot.Skipped))
}

// Start starts the HTTP server and blocks until SIGINT or SIGTERM.
func (s *Server) Start(cfg ServerConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx, cfg)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, cfg ServerConfig) error {
	s.httpServer = &http.Server{
		Addr:           net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Starting server on %s", ln.Addr())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[INFO] Shutting down server...")

	// SSE streams never finish on their own; Shutdown waits for them until the deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("[INFO] Server exited")
	return nil
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api/v1")
	{
		api.GET("/health", s.healthCheck)

		// Catalog routes
		api.GET("/courses", s.listCourses)
		api.GET("/groups", s.listGroups)
		api.POST("/catalog/reload", s.reloadCatalog)

		// Matching routes
		api.GET("/search", s.search)
		api.GET("/matrix", s.matrix)
		api.GET("/suggest", s.suggest)
		api.POST("/selection", s.updateSelection)

		// Real-time events (SSE)
		api.GET("/events", s.hub.HandleSSE)
	}

	s.router.NoRoute(func(c *gin.Context) {
		RespondWithNotFound(c, "route "+c.Request.URL.Path)
	})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
