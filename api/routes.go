package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"githubportfolio/manual"
)

func newRouter(builder PortfolioBuilder, source manual.Source, opts Options, startupTime time.Time) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AcceptedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	h := newPortfolioHandler(builder, source, opts, startupTime)

	router.Get("/healthz", h.health())
	router.Get("/manual", h.getManual())
	router.Route("/portfolio", func(r chi.Router) {
		r.Get("/", h.getPortfolio())
		r.Get("/{handle}", h.getPortfolio())
		r.Get("/{handle}/page", h.getPage())
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteError(w, http.StatusNotFound, "route not found")
	})

	return router
}
