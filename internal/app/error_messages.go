// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-playbook server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgMethodNotAllowed is returned when a known route is called with an
	// HTTP method it does not serve.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON body"

	// MsgFailedToSendFeedback is returned when the mail provider rejected or
	// could not be reached while delivering feedback. Details are only logged.
	MsgFailedToSendFeedback = "Failed to send feedback"

	// MsgEmailServiceNotConfigured is returned when feedback arrives but no
	// mail provider credential is configured.
	MsgEmailServiceNotConfigured = "Email service not configured"

	// MsgTooManyRequests is returned when a client IP exceeded the feedback
	// submission rate.
	MsgTooManyRequests = "Too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
