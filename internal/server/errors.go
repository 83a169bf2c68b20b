// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPHandler is returned when there is no HTTP handler to serve the
	// playbook API and static files.
	errNoHTTPHandler = errors.New("no http handler to serve")

	// errNoListenAddress is returned when the server address is not
	// configured.
	errNoListenAddress = errors.New("server listen address is not set")
)
