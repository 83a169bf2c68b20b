package clientconfig

import "github.com/MKhiriev/go-playbook/models"

// Default returns the built-in, tenant-agnostic configuration.
//
// Every call builds a new value, so callers may hold on to or modify the
// result without affecting anybody else. Optional branding (logo, favicon,
// support link) is intentionally left empty.
func Default() models.ClientConfig {
	return models.ClientConfig{
		SiteConfig: models.SiteConfig{
			AppTitle:      "AI Assistant Playbook",
			AppSubtitle:   "A practical guide to working well with an AI assistant",
			CompanyName:   "Your Organisation",
			AssistantName: "Claude",

			PrimaryColour: "#1f3a5f",
			AccentColour:  "#d97757",

			FooterText: "AI Assistant Playbook",

			FeedbackEnabled:     true,
			FeedbackEmail:       "feedback@playbook.example.co.uk",
			FeedbackSenderEmail: "noreply@playbook.example.co.uk",
			EmailSubjectPrefix:  "[Playbook Feedback]",
		},
		Overlays: models.Overlays{},
		Sections: models.Sections{
			Enabled:  []string{},
			Disabled: []string{},
		},
		StarterKit: models.StarterKit{
			EnabledCategories: []string{"prompts", "templates", "checklists"},
		},
	}
}

// DefaultEmailConfig is the email configuration of the default tenant.
func DefaultEmailConfig() models.EmailConfig {
	return EmailConfigFrom(Default().SiteConfig)
}
