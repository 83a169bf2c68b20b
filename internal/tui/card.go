package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-playbook/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	// minCardWidth keeps the card readable before the first WindowSizeMsg.
	minCardWidth  = 80
	maxFieldWidth = 72
)

// renderCard draws the branding of a resolved configuration. Without a logo
// the display name is rendered as a text mark instead.
func renderCard(state models.ConfigState, width int) string {
	site := state.Config.SiteConfig
	box, title, accent := brandStyles(site.PrimaryColour, site.AccentColour)

	inner := max(width-8, minCardWidth)
	lines := []string{
		title.Render(site.AppTitle),
		accent.Render(site.AppSubtitle),
		"",
		logoLine(site, title),
		"",
		field("Client", state.ClientSlug),
		field("Company", site.DisplayName()),
		field("Assistant", site.AssistantName),
		field("Colours", fmt.Sprintf("%s / %s", valueOrDash(site.PrimaryColour), valueOrDash(site.AccentColour))),
		field("Footer", site.FooterText),
		field("Support", site.SupportURL),
		field("Feedback", feedbackLine(site)),
		"",
		field("Sections", sectionsLine(state.Config.Sections)),
		field("Starter kit", listOrDash(state.Config.StarterKit.EnabledCategories)),
		field("Overlays", listOrDash(state.Config.OverlayCategories())),
	}

	return box.Width(inner).Render(strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return labelStyle.Render(label) + fitText(valueOrDash(value), maxFieldWidth)
}

func logoLine(site models.SiteConfig, title lipgloss.Style) string {
	if !site.HasLogo() {
		return title.Render("[ " + valueOrDash(site.DisplayName()) + " ]")
	}

	logo := site.LogoURL
	if site.LogoAlt != "" {
		logo += " (" + site.LogoAlt + ")"
	}
	return field("Logo", logo)
}

func feedbackLine(site models.SiteConfig) string {
	if !site.FeedbackEnabled {
		return "disabled"
	}
	return "to " + valueOrDash(site.FeedbackEmail)
}

func sectionsLine(s models.Sections) string {
	enabled := "all"
	if len(s.Enabled) > 0 {
		enabled = strings.Join(s.Enabled, ", ")
	}
	if len(s.Disabled) == 0 {
		return enabled
	}
	return fmt.Sprintf("%s (hidden: %s)", enabled, strings.Join(s.Disabled, ", "))
}
