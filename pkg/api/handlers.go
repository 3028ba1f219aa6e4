package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gitie/pkg/catalog"
	"gitie/pkg/engine"
	"gitie/pkg/export"
	"gitie/pkg/version"
)

// generateRequest is the body of POST /api/generate.
type generateRequest struct {
	Selection []string `json:"selection"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "version": version.Version})
}

func (h *handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.Categories()
	for ci := range categories {
		categories[ci].Items = trimItems(r, categories[ci].Items)
	}
	writeJSON(w, map[string][]catalog.Category{"categories": categories})
}

func (h *handler) getCategoryItems(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	writeJSON(w, trimItems(r, h.catalog.CategoryItems(name)))
}

func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)
		return
	}
	writeJSON(w, trimItems(r, h.catalog.SearchFilter(q)))
}

func (h *handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.writeDocument(w, r, req.Selection)
}

func (h *handler) download(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.DefaultFileName+`"`)
	h.writeDocument(w, r, r.URL.Query()["id"])
}

// writeDocument answers with the document for ids. Repeated ids collapse to
// their first occurrence.
func (h *handler) writeDocument(w http.ResponseWriter, r *http.Request, ids []string) {
	sel := engine.Reduce(engine.Selection{}, engine.SelectAction{IDs: ids})
	if unknown := engine.Unknown(h.catalog, sel); len(unknown) > 0 {
		h.logger.Debug("Skipping unknown ids", zap.Strings("ids", unknown))
	}
	w.Header().Set("Content-Type", export.MimeType+"; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.generator.Generate(h.catalog, sel)))
}

// trimItems drops template bodies unless the request asks for them with
// ?content=1.
func trimItems(r *http.Request, items []catalog.Item) []catalog.Item {
	if r.URL.Query().Get("content") == "1" {
		return items
	}
	for i := range items {
		items[i].Content = ""
	}
	return items
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
