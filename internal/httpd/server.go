// Package httpd implements the HTTP API for triggering and inspecting
// ingestion runs.
package httpd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobscout/jobscout/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Server wraps the gin engine and its http.Server.
type Server struct {
	engine *gin.Engine
	srv    *http.Server
	log    logger.Interface
}

// Params holds the dependencies for creating a Server.
type Params struct {
	Address  string
	Ingestor Ingestor
	Runs     RunReader
	Listings ListingReader
	Logger   logger.Interface
}

// NewServer creates the API server and registers its routes.
func NewServer(p Params) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		log:    p.Logger,
		srv: &http.Server{
			Addr:              p.Address,
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}

	h := newHandler(p.Ingestor, p.Runs, p.Listings, p.Logger)

	engine.GET("/health", h.Health)

	v1 := engine.Group("/api/v1")
	v1.POST("/scrape", h.Scrape)
	v1.GET("/runs", h.ListRuns)
	v1.GET("/runs/:id", h.GetRun)
	v1.GET("/listings", h.ListListings)

	return s
}

// Engine exposes the underlying gin engine for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("http server listening", "address", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info("http server shutting down")
	return s.srv.Shutdown(shutdownCtx)
}
