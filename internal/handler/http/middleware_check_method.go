// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-playbook/internal/app"
	"github.com/MKhiriev/go-playbook/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// When the request path exactly matches the pattern of a registered route,
// the caller gets HTTP 405 with an "Allow" header listing the methods that
// route serves and a JSON body {"error":"Method not allowed"}. Any other path
// (wildcard patterns included) is answered with HTTP 404, so that only the
// API endpoints advertise their methods.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		var foundRoute *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = &route
				break
			}
		}

		if foundRoute == nil || len(foundRoute.Handlers) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		allowed := make([]string, 0, len(foundRoute.Handlers))
		for method := range foundRoute.Handlers {
			allowed = append(allowed, method)
		}
		slices.Sort(allowed)

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
