package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-playbook/internal/adapter"
	"github.com/MKhiriev/go-playbook/internal/app"
	"github.com/MKhiriev/go-playbook/internal/validators"
)

// errorResponse describes how an error is reported to the caller. An empty
// message means the error text itself is safe to show.
type errorResponse struct {
	target  error
	status  int
	message string
}

var errorResponses = []errorResponse{
	{target: validators.ErrInvalidCategory, status: http.StatusBadRequest},
	{target: validators.ErrMessageRequired, status: http.StatusBadRequest},
	{target: validators.ErrMessageTooLong, status: http.StatusBadRequest},
	{target: validators.ErrClientNameTooLong, status: http.StatusBadRequest},

	{target: adapter.ErrMailerNotConfigured, status: http.StatusInternalServerError, message: app.MsgEmailServiceNotConfigured},
	{target: adapter.ErrMailDispatchFailed, status: http.StatusInternalServerError, message: app.MsgFailedToSendFeedback},
}

// responseFromError returns the status code and public message for err.
// Unknown errors are reported as a generic 500.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.message == "" {
			return resp.status, resp.target.Error()
		}
		return resp.status, resp.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}
