// Package api serves the catalog and the document generator over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gitie/pkg/catalog"
	"gitie/pkg/engine"
)

// RegisterRoutes builds the router. A nil logger discards request logs.
func RegisterRoutes(c *catalog.Catalog, gen engine.Generator, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	h := &handler{catalog: c, generator: gen, logger: logger}

	r.Get("/healthz", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", h.getCatalog)
		r.Get("/categories/{name}/items", h.getCategoryItems)
		r.Get("/search", h.search)
		r.Post("/generate", h.generate)
		r.Get("/download", h.download)
	})

	return r
}

type handler struct {
	catalog   *catalog.Catalog
	generator engine.Generator
	logger    *zap.Logger
}
