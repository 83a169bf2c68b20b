package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-playbook/internal/app"
	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/utils"
	"github.com/MKhiriev/go-playbook/models"
)

// maxFeedbackBodyBytes caps the request body well above the longest valid
// message.
const maxFeedbackBodyBytes = 64 << 10

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var feedback models.Feedback
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFeedbackBodyBytes)).Decode(&feedback); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	err := h.services.FeedbackService.Submit(ctx, models.FeedbackRequest{
		Feedback: feedback,
		Referer:  r.Referer(),
		Origin:   r.Header.Get("Origin"),
	})
	if err != nil {
		status, message := responseFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Msg("feedback was not delivered")
		} else {
			log.Debug().Err(err).Msg("feedback rejected")
		}
		utils.WriteError(w, message, status)
		return
	}

	log.Info().Str("category", string(feedback.Category)).Msg("feedback delivered")
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
