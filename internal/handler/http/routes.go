package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	feedbackRoute     = "/api/feedback"
	clientConfigRoute = "/api/client-config"
	versionRoute      = "/api/version"
	clientFilesRoute  = "/clients/*"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)

	router.With(h.withRateLimit).Post(feedbackRoute, h.submitFeedback)
	router.With(h.withClientSlug).Get(clientConfigRoute, h.getClientConfig)
	router.Get(versionRoute, h.getServerVersion)

	// tenant files must 404 when missing, never fall back to the SPA
	router.Get(clientFilesRoute, h.serveClientFile)

	router.NotFound(h.serveSPA)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
