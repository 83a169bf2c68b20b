package models

import "fmt"

// EmailConfig is the part of a tenant's SiteConfig used to deliver feedback.
type EmailConfig struct {
	// SenderName is the display name of the sender (the tenant's app title).
	SenderName string
	// SenderEmail is the address feedback is sent from.
	SenderEmail string
	// RecipientEmail is the address feedback is delivered to.
	RecipientEmail string
	// SubjectPrefix is prepended to every feedback subject line.
	SubjectPrefix string
}

// From returns the RFC 5322 "Name <address>" sender string.
func (e EmailConfig) From() string {
	if e.SenderName == "" {
		return e.SenderEmail
	}
	return fmt.Sprintf("%s <%s>", e.SenderName, e.SenderEmail)
}

// Email is an outbound message handed to a mail provider.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}
