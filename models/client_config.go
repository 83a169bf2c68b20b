// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// ClientConfig is the fully resolved configuration of one tenant.
//
// A ClientConfig is produced once per tenant by merging the tenant's partial
// JSON file onto the default configuration and is treated as an immutable
// value afterwards: consumers only read it.
type ClientConfig struct {
	// SiteConfig holds flat copy and branding fields.
	SiteConfig SiteConfig `json:"siteConfig"`

	// Overlays holds per-client substitutions for illustrative content,
	// keyed by overlay category.
	Overlays Overlays `json:"overlays"`

	// Sections controls which parts of the static content tree are shown.
	Sections Sections `json:"sections"`

	// StarterKit lists the starter-kit categories offered to the tenant.
	StarterKit StarterKit `json:"starterKit"`
}

// SiteConfig holds the flat site copy and branding of a tenant.
//
// Fields tagged omitempty are optional branding: when empty, consumers render
// a text-only fallback.
type SiteConfig struct {
	AppTitle      string `json:"appTitle"`
	AppSubtitle   string `json:"appSubtitle"`
	CompanyName   string `json:"companyName"`
	ClientName    string `json:"clientName,omitempty"`
	AssistantName string `json:"assistantName"`

	PrimaryColour string `json:"primaryColour"`
	AccentColour  string `json:"accentColour"`
	LogoURL       string `json:"logoUrl,omitempty"`
	LogoDarkURL   string `json:"logoDarkUrl,omitempty"`
	LogoAlt       string `json:"logoAlt,omitempty"`
	FaviconURL    string `json:"faviconUrl,omitempty"`

	FooterText string `json:"footerText"`
	SupportURL string `json:"supportUrl,omitempty"`

	FeedbackEnabled     bool   `json:"feedbackEnabled"`
	FeedbackEmail       string `json:"feedbackEmail"`
	FeedbackSenderEmail string `json:"feedbackSenderEmail"`
	EmailSubjectPrefix  string `json:"emailSubjectPrefix"`
}

// HasLogo reports whether the tenant supplies a logo image.
func (s SiteConfig) HasLogo() bool {
	return s.LogoURL != ""
}

// DisplayName is the name shown for the tenant: ClientName when set,
// CompanyName otherwise.
func (s SiteConfig) DisplayName() string {
	if s.ClientName != "" {
		return s.ClientName
	}
	return s.CompanyName
}

// Overlays maps an overlay category (e.g. "brandVoice") to its raw JSON
// content. A category is always replaced as a whole.
type Overlays map[string]json.RawMessage

// Sections is the allow-list and deny-list of content section identifiers.
type Sections struct {
	// Enabled, when non-empty, restricts the content tree to these sections.
	Enabled []string `json:"enabled"`

	// Disabled hides these sections. It takes precedence over Enabled.
	Disabled []string `json:"disabled"`
}

// IsEnabled reports whether the section with the given id is shown.
func (s Sections) IsEnabled(id string) bool {
	if slices.Contains(s.Disabled, id) {
		return false
	}
	if len(s.Enabled) == 0 {
		return true
	}
	return slices.Contains(s.Enabled, id)
}

// StarterKit lists the starter-kit content categories a tenant is offered.
type StarterKit struct {
	EnabledCategories []string `json:"enabledCategories"`
}

// IsEnabled reports whether category is offered.
func (k StarterKit) IsEnabled(category string) bool {
	return slices.Contains(k.EnabledCategories, category)
}

// Overlay decodes the overlay category into v. It reports false when the
// tenant has no such overlay.
func (c ClientConfig) Overlay(category string, v any) (bool, error) {
	raw, ok := c.Overlays[category]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, err
	}
	return true, nil
}

// Clone returns a deep copy of c that shares no mutable state with it.
func (c ClientConfig) Clone() ClientConfig {
	out := c

	out.Overlays = make(Overlays, len(c.Overlays))
	for category, raw := range c.Overlays {
		out.Overlays[category] = bytes.Clone(raw)
	}

	out.Sections = Sections{
		Enabled:  cloneStrings(c.Sections.Enabled),
		Disabled: cloneStrings(c.Sections.Disabled),
	}
	out.StarterKit = StarterKit{
		EnabledCategories: cloneStrings(c.StarterKit.EnabledCategories),
	}

	return out
}

// Normalize replaces nil collections with empty ones so that every section
// serialises to a concrete value.
func (c *ClientConfig) Normalize() {
	if c.Overlays == nil {
		c.Overlays = Overlays{}
	}
	if c.Sections.Enabled == nil {
		c.Sections.Enabled = []string{}
	}
	if c.Sections.Disabled == nil {
		c.Sections.Disabled = []string{}
	}
	if c.StarterKit.EnabledCategories == nil {
		c.StarterKit.EnabledCategories = []string{}
	}
}

// OverlayCategories returns the overlay category names in sorted order.
func (c ClientConfig) OverlayCategories() []string {
	return slices.Sorted(maps.Keys(c.Overlays))
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// PartialClientConfig is the shape of a tenant file. Every section is kept as
// raw JSON so that key presence, not zero-ness, decides what overrides the
// defaults.
type PartialClientConfig struct {
	SiteConfig json.RawMessage `json:"siteConfig,omitempty"`
	Overlays   json.RawMessage `json:"overlays,omitempty"`
	Sections   json.RawMessage `json:"sections,omitempty"`
	StarterKit json.RawMessage `json:"starterKit,omitempty"`
}

// CachedClientConfig is a cache entry: a resolved config plus the Unix time in
// milliseconds at which it was written.
type CachedClientConfig struct {
	Config    ClientConfig `json:"config"`
	Timestamp int64        `json:"timestamp"`
}
