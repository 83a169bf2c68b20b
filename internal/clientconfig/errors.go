package clientconfig

import "errors"

var (
	// ErrMalformedClientConfig is returned when a tenant file is not a JSON
	// object.
	ErrMalformedClientConfig = errors.New("malformed client config")

	// ErrMalformedSection is returned when a top-level section of a tenant
	// file has the wrong JSON type (e.g. "siteConfig": "x").
	ErrMalformedSection = errors.New("malformed client config section")
)
