package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"githubportfolio/logger"
	"githubportfolio/models"
	"githubportfolio/portfolio"
)

// GitHubClientInterface abstracts the GitHub client operations needed by the
// aggregator (for testability). Implementations are fail-soft: they return
// empty values instead of errors.
type GitHubClientInterface interface {
	FetchUser(ctx context.Context, handle string) *models.User
	FetchRepos(ctx context.Context, handle string) []models.Repository
	FetchReadme(ctx context.Context, handle string) *string
}

// Aggregator builds portfolios from GitHub data
type Aggregator struct {
	client        GitHubClientInterface
	thumbnailBase string
}

// NewAggregator creates an aggregator reading from client
func NewAggregator(client GitHubClientInterface, thumbnailBase string) *Aggregator {
	return &Aggregator{
		client:        client,
		thumbnailBase: thumbnailBase,
	}
}

// Aggregate fetches the profile, repositories and profile README of handle
// concurrently, waits for all three, and derives skills and projects from
// the repositories. It always returns a renderable portfolio.
func (a *Aggregator) Aggregate(ctx context.Context, handle string) models.Portfolio {
	start := time.Now()

	var (
		user   *models.User
		repos  []models.Repository
		readme *string
	)

	var g errgroup.Group
	g.Go(func() error {
		user = a.client.FetchUser(ctx, handle)
		return nil
	})
	g.Go(func() error {
		repos = a.client.FetchRepos(ctx, handle)
		return nil
	})
	g.Go(func() error {
		readme = a.client.FetchReadme(ctx, handle)
		return nil
	})
	_ = g.Wait()

	result := models.Portfolio{
		User:     user,
		Projects: portfolio.TransformProjects(repos, handle, a.thumbnailBase),
		Skills:   portfolio.ExtractSkills(repos),
		Readme:   readme,
	}

	logger.Info("Portfolio aggregated",
		zap.String("handle", handle),
		zap.Bool("has_user", user != nil),
		zap.Int("repositories", len(repos)),
		zap.Int("projects", len(result.Projects)),
		zap.Int("skills", len(result.Skills)),
		zap.Bool("has_readme", readme != nil),
		zap.Duration("elapsed", time.Since(start)))

	return result
}
