package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"githubportfolio/logger"
	"githubportfolio/manual"
)

// Options configures the HTTP server
type Options struct {
	Port            string
	DefaultHandle   string
	Revalidate      time.Duration
	AcceptedOrigins []string
}

// Server serves portfolios over HTTP
type Server struct {
	*http.Server
	startupTime time.Time
}

// NewServer creates a server. source may be nil when no manual record is configured.
func NewServer(builder PortfolioBuilder, source manual.Source, opts Options) Server {
	startupTime := time.Now()
	router := newRouter(builder, source, opts, startupTime)

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", opts.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return Server{server, startupTime}
}

// Start serves until the server is shut down and reports the result on errChannel
func (s Server) Start(errChannel chan<- error) {
	logger.Info("Server started", zap.String("addr", s.Addr))
	errChannel <- s.ListenAndServe()
}

// ShutdownGracefully stops accepting requests and waits up to timeout for
// in-flight ones.
func (s Server) ShutdownGracefully(timeout time.Duration) {
	logger.Info("Gracefully shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down the server", zap.Error(err))
		return
	}
	logger.Info("HTTP server gracefully shut down")
}
