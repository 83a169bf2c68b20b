package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/tenant"
	"github.com/MKhiriev/go-playbook/internal/utils"
)

// withClientSlug resolves the tenant of the page the request is made for:
// the Host header first, then the "client" query parameter and the server's
// default client when the host names no tenant. The slug is stored under
// [utils.ClientSlugCtxKey] and added to the request logger.
func (h *Handler) withClientSlug(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := tenant.ResolveWithOverrides(r.Host, r.URL.Query(), h.defaultClient)

		log := logger.FromRequest(r).WithClient(slug)
		ctx := context.WithValue(r.Context(), utils.ClientSlugCtxKey, slug)
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
