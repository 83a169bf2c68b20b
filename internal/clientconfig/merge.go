package clientconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-playbook/models"
)

var jsonNull = []byte("null")

// Merge combines partial with defaults into a complete configuration.
//
// Each top-level section is merged one level deep: keys present in the
// partial section replace the default value (even when the replacement is
// empty or false), keys absent from it keep the default. Nested values are
// not merged; an overlay category supplied by the tenant replaces the default
// category as a whole. Sections that are missing or null keep their default.
//
// defaults is never modified.
func Merge(defaults models.ClientConfig, partial models.PartialClientConfig) (models.ClientConfig, error) {
	merged := defaults.Clone()

	sections := []struct {
		name string
		raw  json.RawMessage
		dst  any
	}{
		{name: "siteConfig", raw: partial.SiteConfig, dst: &merged.SiteConfig},
		{name: "overlays", raw: partial.Overlays, dst: &merged.Overlays},
		{name: "sections", raw: partial.Sections, dst: &merged.Sections},
		{name: "starterKit", raw: partial.StarterKit, dst: &merged.StarterKit},
	}

	for _, s := range sections {
		if isAbsent(s.raw) {
			continue
		}
		if err := json.Unmarshal(s.raw, s.dst); err != nil {
			return models.ClientConfig{}, fmt.Errorf("%w %q: %w", ErrMalformedSection, s.name, err)
		}
	}

	merged.Normalize()
	return merged, nil
}

// MergeBytes parses data as a tenant file and merges it onto defaults.
func MergeBytes(defaults models.ClientConfig, data []byte) (models.ClientConfig, error) {
	partial, err := Parse(data)
	if err != nil {
		return models.ClientConfig{}, err
	}

	return Merge(defaults, partial)
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}
