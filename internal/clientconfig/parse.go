package clientconfig

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/go-playbook/models"
)

// Parse decodes a tenant file. Comments and trailing commas are tolerated so
// that tenant files can be annotated by hand.
func Parse(data []byte) (models.PartialClientConfig, error) {
	var partial models.PartialClientConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &partial); err != nil {
		return models.PartialClientConfig{}, fmt.Errorf("%w: %w", ErrMalformedClientConfig, err)
	}

	return partial, nil
}
