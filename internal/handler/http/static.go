package http

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-playbook/internal/tenant"
	"github.com/go-chi/chi/v5"
)

const (
	spaIndex  = "index.html"
	apiPrefix = "/api/"
)

// serveClientFile serves public/clients/{slug}.json. Names that are not a
// sanitised tenant slug are rejected without touching the file system.
func (h *Handler) serveClientFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	slug, isJSON := strings.CutSuffix(name, ".json")
	if !isJSON || tenant.SanitiseSlug(slug) != slug || tenant.IsDefault(slug) {
		http.NotFound(w, r)
		return
	}

	http.ServeFileFS(w, r, h.public, path.Join("clients", name))
}

// serveSPA serves files of the compiled single page app and falls back to
// its index for every other GET so that client side routes resolve.
func (h *Handler) serveSPA(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead || strings.HasPrefix(r.URL.Path, apiPrefix) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name != "" && fs.ValidPath(name) {
		if info, err := fs.Stat(h.public, name); err == nil && !info.IsDir() {
			http.ServeFileFS(w, r, h.public, name)
			return
		}
	}

	http.ServeFileFS(w, r, h.public, spaIndex)
}
