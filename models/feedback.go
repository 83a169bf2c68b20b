// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FeedbackCategory is the kind of feedback a visitor submits.
type FeedbackCategory string

const (
	FeedbackCategoryMoreInfo FeedbackCategory = "more-info"
	FeedbackCategoryIssue    FeedbackCategory = "issue"
	FeedbackCategoryGeneral  FeedbackCategory = "general"
)

var feedbackCategoryLabels = map[FeedbackCategory]string{
	FeedbackCategoryMoreInfo: "Request for more information",
	FeedbackCategoryIssue:    "Issue report",
	FeedbackCategoryGeneral:  "General feedback",
}

// IsValid reports whether c is one of the known categories.
func (c FeedbackCategory) IsValid() bool {
	_, ok := feedbackCategoryLabels[c]
	return ok
}

// Label returns the human readable name of c, or c itself when unknown.
func (c FeedbackCategory) Label() string {
	if label, ok := feedbackCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Feedback is the body of a feedback intake request.
type Feedback struct {
	Category   FeedbackCategory `json:"category"`
	Message    string           `json:"message"`
	ClientName string           `json:"clientName,omitempty"`
}

// FeedbackRequest is a Feedback together with the headers used to identify
// the tenant it was sent from.
type FeedbackRequest struct {
	Feedback Feedback
	Referer  string
	Origin   string
}

// SuccessResponse is returned when feedback was dispatched.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries a human readable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResolvedClientConfig is the body of the resolved-config endpoint.
type ResolvedClientConfig struct {
	Slug    string        `json:"slug"`
	Outcome ConfigOutcome `json:"outcome"`
	Config  ClientConfig  `json:"config"`
}
