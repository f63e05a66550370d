package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"githubportfolio/logger"
	"githubportfolio/models"
)

const (
	// DefaultBaseURL is the public GitHub REST API
	DefaultBaseURL = "https://api.github.com"
	// DefaultFreshness is the cache window advertised on repository list requests
	DefaultFreshness = time.Hour

	acceptJSON = "application/vnd.github.v3+json"
	acceptRaw  = "application/vnd.github.v3.raw"
	userAgent  = "githubportfolio"
	perPage    = 100
)

// RateLimit represents GitHub's rate limit information
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Client is a read-only, unauthenticated GitHub API client. Every fetch is
// one-shot and fail-soft: failures are logged and replaced by an empty value.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	freshness  time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the outbound request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithTransport installs a custom round tripper, e.g. a caching transport
// honoring the freshness hint.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithFreshness sets the freshness window advertised on repository list requests
func WithFreshness(d time.Duration) Option {
	return func(c *Client) {
		c.freshness = d
	}
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   parsed,
		freshness: DefaultFreshness,
	}
	for _, opt := range opts {
		opt(c)
	}

	logger.Info("Initializing GitHub client",
		zap.String("base_url", c.baseURL.String()),
		zap.Duration("timeout", c.httpClient.Timeout),
		zap.Duration("freshness", c.freshness))
	return c, nil
}

// FetchUser fetches the profile of handle. It returns nil when the profile
// cannot be fetched.
func (c *Client) FetchUser(ctx context.Context, handle string) *models.User {
	if handle == "" {
		logger.Error("Failed to fetch user", zap.Error(ErrEmptyHandle))
		return nil
	}

	reqURL := c.baseURL.JoinPath("users", handle)
	resp, err := c.get(ctx, reqURL, acceptJSON, nil)
	if err != nil {
		logger.Error("Failed to fetch user", zap.Error(err), zap.String("handle", handle))
		return nil
	}
	defer resp.Body.Close()

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		logger.Error("Failed to decode user response",
			zap.Error(fmt.Errorf("%w: %v", ErrMalformedResponse, err)),
			zap.String("handle", handle))
		return nil
	}

	logger.Debug("Successfully fetched user",
		zap.String("handle", handle),
		zap.Int("public_repos", user.PublicRepos))
	return &user
}

// FetchRepos fetches a single page of the repositories owned by handle, most
// recently updated first, with forks and archived repositories removed. It
// returns an empty slice when the list cannot be fetched.
func (c *Client) FetchRepos(ctx context.Context, handle string) []models.Repository {
	if handle == "" {
		logger.Error("Failed to fetch repositories", zap.Error(ErrEmptyHandle))
		return []models.Repository{}
	}

	reqURL := c.baseURL.JoinPath("users", handle, "repos")
	q := reqURL.Query()
	q.Set("sort", "updated")
	q.Set("per_page", strconv.Itoa(perPage))
	reqURL.RawQuery = q.Encode()

	hints := http.Header{}
	hints.Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.freshness.Seconds())))

	resp, err := c.get(ctx, reqURL, acceptJSON, hints)
	if err != nil {
		logger.Error("Failed to fetch repositories", zap.Error(err), zap.String("handle", handle))
		return []models.Repository{}
	}
	defer resp.Body.Close()

	var repos []models.Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		logger.Error("Failed to decode repositories response",
			zap.Error(fmt.Errorf("%w: %v", ErrMalformedResponse, err)),
			zap.String("handle", handle))
		return []models.Repository{}
	}

	kept := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Fork || repo.Archived {
			continue
		}
		kept = append(kept, repo)
	}

	logger.Debug("Successfully fetched repositories",
		zap.String("handle", handle),
		zap.Int("total", len(repos)),
		zap.Int("kept", len(kept)))
	return kept
}

// FetchReadme fetches the raw text of the special profile README
// ({handle}/{handle}). It returns nil when there is none.
func (c *Client) FetchReadme(ctx context.Context, handle string) *string {
	if handle == "" {
		logger.Error("Failed to fetch readme", zap.Error(ErrEmptyHandle))
		return nil
	}

	reqURL := c.baseURL.JoinPath("repos", handle, handle, "readme")
	resp, err := c.get(ctx, reqURL, acceptRaw, nil)
	if err != nil {
		logger.Error("Failed to fetch readme", zap.Error(err), zap.String("handle", handle))
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read readme response",
			zap.Error(fmt.Errorf("%w: %v", ErrMalformedResponse, err)),
			zap.String("handle", handle))
		return nil
	}

	readme := string(body)
	return &readme
}

// get issues a single GET request. Non-2xx responses are closed and
// reported as errors.
func (c *Client) get(ctx context.Context, reqURL *url.URL, accept string, hints http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)
	for key, values := range hints {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		if isRateLimited(resp) {
			limit := parseRateLimit(resp)
			logger.Warn("GitHub rate limit exhausted",
				zap.String("url", reqURL.String()),
				zap.Int("limit", limit.Limit),
				zap.Int("remaining", limit.Remaining),
				zap.Time("reset_time", limit.Reset))
		}
		return nil, fmt.Errorf("%w: status code %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return resp, nil
}

// parseRateLimit parses rate limit information from response headers
func parseRateLimit(resp *http.Response) RateLimit {
	limit, _ := strconv.Atoi(resp.Header.Get("X-RateLimit-Limit"))
	remaining, _ := strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining"))
	reset, _ := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)

	return RateLimit{
		Limit:     limit,
		Remaining: remaining,
		Reset:     time.Unix(reset, 0),
	}
}

func isRateLimited(resp *http.Response) bool {
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"
}
