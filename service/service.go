package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"githubportfolio/api"
	"githubportfolio/config"
	"githubportfolio/db"
	"githubportfolio/github"
	"githubportfolio/logger"
	"githubportfolio/manual"
	"githubportfolio/models"
)

const shutdownTimeout = 15 * time.Second

// Service errors
var (
	ErrServiceInit     = fmt.Errorf("service initialization error")
	ErrServiceShutdown = fmt.Errorf("service shutdown error")
	ErrServe           = fmt.Errorf("http server error")
)

// Service wires the GitHub client, the aggregator, the manual record source
// and the HTTP server together.
type Service struct {
	config     *config.Config
	aggregator *Aggregator
	source     manual.Source
	database   *db.DB
	server     api.Server
}

// NewService creates a new service instance
func NewService(cfg *config.Config) (*Service, error) {
	client, err := github.NewClient(cfg.APIBase,
		github.WithTimeout(cfg.HTTPTimeout),
		github.WithFreshness(cfg.Revalidate))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GitHub client: %v", ErrServiceInit, err)
	}

	s := &Service{
		config:     cfg,
		aggregator: NewAggregator(client, cfg.ThumbnailBase),
	}

	switch {
	case cfg.Database.Enabled():
		database, err := db.New(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to initialize database: %v", ErrServiceInit, err)
		}
		s.database = database
		s.source = database
	case cfg.ManualFile != "":
		s.source = manual.NewFileSource(cfg.ManualFile)
	}

	s.server = api.NewServer(s.aggregator, s.source, api.Options{
		Port:            cfg.Port,
		DefaultHandle:   cfg.Username,
		Revalidate:      cfg.Revalidate,
		AcceptedOrigins: cfg.AcceptedOrigins,
	})

	logger.Info("Service initialized successfully",
		zap.String("default_handle", cfg.Username),
		zap.String("api_base", cfg.APIBase),
		zap.Duration("revalidate", cfg.Revalidate),
		zap.Bool("manual_from_database", s.database != nil),
		zap.String("manual_file", cfg.ManualFile))

	return s, nil
}

// Aggregate builds the portfolio of handle, or of the configured default
// handle when handle is empty.
func (s *Service) Aggregate(ctx context.Context, handle string) models.Portfolio {
	if handle == "" {
		handle = s.config.Username
	}
	return s.aggregator.Aggregate(ctx, handle)
}

// Manual loads the manual record. It returns manual.ErrNotConfigured when
// no source is configured.
func (s *Service) Manual(ctx context.Context) (*models.ManualConfig, error) {
	if s.source == nil {
		return nil, manual.ErrNotConfigured
	}
	return s.source.Load(ctx)
}

// Start serves HTTP until the server fails or a shutdown signal arrives
func (s *Service) Start() error {
	errChan := make(chan error, 1)
	go s.server.Start(errChan)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrServe, err)
	case sig := <-sigChan:
		logger.Info("Shutdown signal received, initiating graceful shutdown", zap.String("signal", sig.String()))
		s.server.ShutdownGracefully(shutdownTimeout)
		return nil
	}
}

// Close performs cleanup operations
func (s *Service) Close() error {
	logger.Info("Closing service")
	if s.database != nil {
		if err := s.database.Close(); err != nil {
			return fmt.Errorf("%w: failed to close database: %v", ErrServiceShutdown, err)
		}
	}
	return nil
}
