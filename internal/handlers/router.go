package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RouterDeps holds what NewRouter wires into routes.
type RouterDeps struct {
	Rates     ExchangeRateGetter
	Converter Converter
	History   HistorySearcher
	Bulk      BulkConverter

	// Metrics serves /metrics when set.
	Metrics http.Handler

	// Middleware runs for every route, APIMiddleware only under /api.
	Middleware    []func(http.Handler) http.Handler
	APIMiddleware []func(http.Handler) http.Handler
}

// NewRouter builds the service's HTTP routes.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(deps.Middleware...)

	r.Get("/healthz", NewHealthHandler())
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(deps.APIMiddleware...)

		RegisterGetExchangeRateHandler(r, NewGetExchangeRateHandler(deps.Rates))
		RegisterConvertHandler(r, NewConvertHandler(deps.Converter))
		RegisterSearchHistoryHandler(r, NewSearchHistoryHandler(deps.History))
		RegisterBulkConvertHandler(r, NewBulkConvertHandler(deps.Bulk))
	})

	return r
}

// NewHealthHandler reports liveness.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
