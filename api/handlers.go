package api

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"githubportfolio/logger"
	"githubportfolio/manual"
	"githubportfolio/models"
	"githubportfolio/view"
)

// GitHub logins: alphanumerics and single hyphens, at most 39 characters
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,37}[A-Za-z0-9])?$`)

// PortfolioBuilder builds the portfolio of a handle
type PortfolioBuilder interface {
	Aggregate(ctx context.Context, handle string) models.Portfolio
}

type portfolioHandler struct {
	responder     Responder
	logger        *zap.Logger
	builder       PortfolioBuilder
	source        manual.Source
	defaultHandle string
	cacheControl  string
	startupTime   time.Time
}

func newPortfolioHandler(builder PortfolioBuilder, source manual.Source, opts Options, startupTime time.Time) portfolioHandler {
	log := logger.WithContext(zap.String("handler", "portfolio"))
	return portfolioHandler{
		responder:     NewResponder(log),
		logger:        log,
		builder:       builder,
		source:        source,
		defaultHandle: opts.DefaultHandle,
		cacheControl:  "public, max-age=" + strconv.Itoa(int(opts.Revalidate.Seconds())),
		startupTime:   startupTime,
	}
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (h portfolioHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, healthResponse{
			Status: "ok",
			Uptime: time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}

// getPortfolio serves the aggregate of {handle}, or of the default handle
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle, ok := h.handle(w, r)
		if !ok {
			return
		}

		result := h.builder.Aggregate(r.Context(), handle)
		w.Header().Set("Cache-Control", h.cacheControl)
		h.responder.WriteJSON(w, http.StatusOK, result)
	}
}

// getPage serves the laid-out page of {handle}; ?language= and ?q= filter the projects
func (h portfolioHandler) getPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle, ok := h.handle(w, r)
		if !ok {
			return
		}

		result := h.builder.Aggregate(r.Context(), handle)
		page := view.NewPage(result, view.PageOptions{
			Language: r.URL.Query().Get("language"),
			Query:    r.URL.Query().Get("q"),
		})
		w.Header().Set("Cache-Control", h.cacheControl)
		h.responder.WriteJSON(w, http.StatusOK, page)
	}
}

func (h portfolioHandler) getManual() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.source == nil {
			h.responder.WriteError(w, http.StatusNotFound, manual.ErrNotConfigured.Error())
			return
		}

		cfg, err := h.source.Load(r.Context())
		if err != nil {
			h.logger.Error("Failed to load manual record", zap.Error(err))
			status := http.StatusInternalServerError
			if errors.Is(err, manual.ErrInvalid) {
				status = http.StatusUnprocessableEntity
			}
			h.responder.WriteError(w, status, "manual record unavailable")
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, cfg)
	}
}

// handle resolves the requested handle, writing a 400 when it is malformed
func (h portfolioHandler) handle(w http.ResponseWriter, r *http.Request) (string, bool) {
	handle := chi.URLParam(r, "handle")
	if handle == "" {
		handle = h.defaultHandle
	}
	if !handlePattern.MatchString(handle) {
		h.responder.WriteError(w, http.StatusBadRequest, "invalid handle")
		return "", false
	}
	return handle, true
}
