// Package api exposes the prediction service over HTTP using gin.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitwall/internal/predictor"
)

// Server wraps the gin engine and its http.Server.
type Server struct {
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer builds the router and handlers. cacheTTL bounds how long an
// identical prediction request is served from cache; a non-positive TTL
// disables the cache.
func NewServer(addr string, engine *predictor.Engine, cacheTTL time.Duration, logger *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(corsMiddleware())

	h := NewHandler(engine, newForecastCache(cacheTTL), logger)

	router.GET("/", h.Root)
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/predict", h.PredictRace)
		apiGroup.GET("/teams", h.GetTeams)
		apiGroup.GET("/circuits", h.GetCircuits)
		apiGroup.GET("/driver-stats", h.GetDriverStats)
		apiGroup.GET("/constructor-standings", h.GetConstructorStandings)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Start begins serving. Blocks until the server stops.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.httpServer.Addr).Info("API server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("API server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestLogger emits one structured line per request.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		}).Debug("request served")
	}
}

// corsMiddleware mirrors the permissive policy the frontend expects.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
