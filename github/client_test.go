package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"githubportfolio/logger"
	"githubportfolio/models"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := logger.Set(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, WithTimeout(5*time.Second))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	testCases := []struct {
		name        string
		baseURL     string
		expectError bool
		expected    string
	}{
		{name: "default base", baseURL: "", expected: DefaultBaseURL},
		{name: "custom base", baseURL: "http://localhost:8080/api", expected: "http://localhost:8080/api"},
		{name: "missing scheme", baseURL: "api.github.com", expectError: true},
		{name: "unparsable", baseURL: "http://[::1", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(tc.baseURL)
			if tc.expectError {
				assert.ErrorIs(t, err, ErrInvalidBaseURL)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, client.baseURL.String())
			assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
			assert.Equal(t, DefaultFreshness, client.freshness)
		})
	}
}

func TestNewClientOptions(t *testing.T) {
	transport := &http.Transport{}
	client, err := NewClient("", WithTimeout(time.Second), WithFreshness(time.Minute), WithTransport(transport))
	require.NoError(t, err)

	assert.Equal(t, time.Second, client.httpClient.Timeout)
	assert.Equal(t, time.Minute, client.freshness)
	assert.Same(t, transport, client.httpClient.Transport)
}

func TestFetchUser(t *testing.T) {
	created := time.Date(2019, time.March, 4, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		expectNil      bool
	}{
		{
			name:           "successful fetch",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"id":1,"login":"octocat","name":"The Octocat","bio":null,"public_repos":8,"followers":20,"following":1,"created_at":"2019-03-04T00:00:00Z"}`,
		},
		{name: "user not found", mockStatusCode: http.StatusNotFound, expectNil: true},
		{name: "server error", mockStatusCode: http.StatusInternalServerError, expectNil: true},
		{name: "malformed body", mockStatusCode: http.StatusOK, mockBody: `{"login":`, expectNil: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := observeLogs(t)
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/octocat", r.URL.Path)
				assert.Equal(t, acceptJSON, r.Header.Get("Accept"))
				assert.Empty(t, r.Header.Get("Authorization"))

				w.WriteHeader(tc.mockStatusCode)
				_, _ = w.Write([]byte(tc.mockBody))
			})

			user := client.FetchUser(context.Background(), "octocat")

			if tc.expectNil {
				assert.Nil(t, user)
				assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
				return
			}
			require.NotNil(t, user)
			assert.Equal(t, "octocat", user.Login)
			assert.Equal(t, "The Octocat", user.Name)
			assert.Empty(t, user.Bio)
			assert.Equal(t, 8, user.PublicRepos)
			assert.Equal(t, created, user.CreatedAt)
			assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
		})
	}
}

func TestFetchRepos(t *testing.T) {
	repos := []models.Repository{
		{ID: 1, Name: "kept", Topics: []string{"go"}},
		{ID: 2, Name: "forked", Fork: true},
		{ID: 3, Name: "archived", Archived: true},
		{ID: 4, Name: "also-kept"},
	}

	t.Run("filters forks and archived", func(t *testing.T) {
		observeLogs(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			assert.Empty(t, r.URL.Query().Get("page"))
			assert.Equal(t, acceptJSON, r.Header.Get("Accept"))
			assert.Equal(t, "max-age=3600", r.Header.Get("Cache-Control"))

			_ = json.NewEncoder(w).Encode(repos)
		})

		got := client.FetchRepos(context.Background(), "octocat")
		require.Len(t, got, 2)
		assert.Equal(t, "kept", got[0].Name)
		assert.Equal(t, "also-kept", got[1].Name)
	})

	t.Run("freshness window is configurable", func(t *testing.T) {
		observeLogs(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "max-age=60", r.Header.Get("Cache-Control"))
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, WithFreshness(time.Minute))
		require.NoError(t, err)
		assert.Empty(t, client.FetchRepos(context.Background(), "octocat"))
	})

	failures := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-RateLimit-Limit", "60")
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", "1700000000")
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not":"a list"}`))
			},
		},
	}

	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			logs := observeLogs(t)
			client := newTestClient(t, tc.handler)

			got := client.FetchRepos(context.Background(), "octocat")
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, 1, logs.FilterMessageSnippet("repositories").FilterLevelExact(zapcore.ErrorLevel).Len())
		})
	}
}

func TestFetchReposRateLimitDiagnostics(t *testing.T) {
	logs := observeLogs(t)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1700000000")
		w.WriteHeader(http.StatusForbidden)
	})

	start := time.Now()
	client.FetchRepos(context.Background(), "octocat")
	assert.Less(t, time.Since(start), 5*time.Second)

	warnings := logs.FilterMessage("GitHub rate limit exhausted").All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	assert.EqualValues(t, 60, fields["limit"])
	assert.EqualValues(t, 0, fields["remaining"])
}

func TestFetchReadme(t *testing.T) {
	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		expected       *string
	}{
		{
			name:           "profile readme present",
			mockStatusCode: http.StatusOK,
			mockBody:       "# Hi there\n\n## About Me\nI build things.\n",
			expected:       strPtr("# Hi there\n\n## About Me\nI build things.\n"),
		},
		{
			name:           "empty readme",
			mockStatusCode: http.StatusOK,
			mockBody:       "",
			expected:       strPtr(""),
		},
		{name: "no profile readme", mockStatusCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			observeLogs(t)
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/octocat/octocat/readme", r.URL.Path)
				assert.Equal(t, acceptRaw, r.Header.Get("Accept"))

				w.WriteHeader(tc.mockStatusCode)
				_, _ = w.Write([]byte(tc.mockBody))
			})

			got := client.FetchReadme(context.Background(), "octocat")
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	logs := observeLogs(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	server.Close()

	ctx := context.Background()
	assert.Nil(t, client.FetchUser(ctx, "octocat"))
	assert.Empty(t, client.FetchRepos(ctx, "octocat"))
	assert.Nil(t, client.FetchReadme(ctx, "octocat"))
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestEmptyHandle(t *testing.T) {
	logs := observeLogs(t)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	ctx := context.Background()
	assert.Nil(t, client.FetchUser(ctx, ""))
	assert.Empty(t, client.FetchRepos(ctx, ""))
	assert.Nil(t, client.FetchReadme(ctx, ""))
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestParseRateLimit(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("X-RateLimit-Limit", "5000")
	resp.Header.Set("X-RateLimit-Remaining", "4999")
	resp.Header.Set("X-RateLimit-Reset", "1700000000")

	limit := parseRateLimit(resp)
	assert.Equal(t, 5000, limit.Limit)
	assert.Equal(t, 4999, limit.Remaining)
	assert.Equal(t, time.Unix(1700000000, 0), limit.Reset)
}

func strPtr(s string) *string {
	return &s
}
