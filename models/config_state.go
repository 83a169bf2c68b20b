package models

// ConfigState is what the preview exposes to its views while the tenant
// configuration loads: Config is always usable, the defaults standing in
// until loading settles.
type ConfigState struct {
	Config     ClientConfig
	IsLoading  bool
	ClientSlug string
	// Err is set only when loading failed unexpectedly.
	Err string
}

// IsTerminal reports whether no further state changes will follow.
func (s ConfigState) IsTerminal() bool {
	return !s.IsLoading
}
