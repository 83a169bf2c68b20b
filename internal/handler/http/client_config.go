package http

import (
	"net/http"

	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/tenant"
	"github.com/MKhiriev/go-playbook/internal/utils"
	"github.com/MKhiriev/go-playbook/models"
)

// getClientConfig responds with the complete configuration of the tenant
// resolved by withClientSlug. It always succeeds; a failed load is reported
// through the "fell-back" outcome.
func (h *Handler) getClientConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug, ok := utils.GetClientSlugFromContext(ctx)
	if !ok {
		slug = tenant.DefaultSlug
	}

	result := h.services.ConfigLoader.Load(ctx, slug)
	if result.FellBack() {
		log.Warn().Err(result.Reason).Msg("client config fell back to defaults")
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, models.ResolvedClientConfig{
		Slug:    result.Slug,
		Outcome: result.Outcome,
		Config:  result.Config,
	}, http.StatusOK)
}
