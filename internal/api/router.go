// Package api exposes graph analysis over HTTP. A report is created by
// posting a plain edge-list body and can be fetched later by the id the
// server assigned. The analysis itself is the same run the CLI
// performs, shared through pkg/analyze.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the HTTP routing table for the given handlers.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)

	r.Route("/reports", func(r chi.Router) {
		r.Post("/", h.createReport)
		r.Get("/{id}", h.getReport)
	})

	return r
}
