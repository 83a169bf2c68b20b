package clientconfig

import (
	"bytes"
	"encoding/json"

	"github.com/MKhiriev/go-playbook/models"
)

// EmailConfigFrom projects the feedback email fields out of site.
func EmailConfigFrom(site models.SiteConfig) models.EmailConfig {
	return models.EmailConfig{
		SenderName:     site.AppTitle,
		SenderEmail:    site.FeedbackSenderEmail,
		RecipientEmail: site.FeedbackEmail,
		SubjectPrefix:  site.EmailSubjectPrefix,
	}
}

// ProjectEmailConfig reads only the four email keys of a tenant file's
// siteConfig. A key that is missing, empty or not a string takes its value
// from defaults, and so does every key when siteConfig is not an object. The
// rest of the file is not decoded.
//
// An error is returned only when data is not a JSON object.
func ProjectEmailConfig(data []byte, defaults models.EmailConfig) (models.EmailConfig, error) {
	partial, err := Parse(data)
	if err != nil {
		return defaults, err
	}

	var site map[string]json.RawMessage
	if isAbsent(partial.SiteConfig) || json.Unmarshal(partial.SiteConfig, &site) != nil {
		return defaults, nil
	}

	return models.EmailConfig{
		SenderName:     stringField(site, "appTitle", defaults.SenderName),
		SenderEmail:    stringField(site, "feedbackSenderEmail", defaults.SenderEmail),
		RecipientEmail: stringField(site, "feedbackEmail", defaults.RecipientEmail),
		SubjectPrefix:  stringField(site, "emailSubjectPrefix", defaults.SubjectPrefix),
	}, nil
}

func stringField(fields map[string]json.RawMessage, key, fallback string) string {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return fallback
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil || value == "" {
		return fallback
	}
	return value
}
