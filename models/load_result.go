package models

// ConfigOutcome tells how a [LoadResult] was produced.
type ConfigOutcome string

const (
	// OutcomeDefault means the slug selected the built-in configuration and
	// no I/O happened.
	OutcomeDefault ConfigOutcome = "default"
	// OutcomeCached means a fresh cache entry was served.
	OutcomeCached ConfigOutcome = "cached"
	// OutcomeFetched means the tenant file was read and merged.
	OutcomeFetched ConfigOutcome = "fetched"
	// OutcomeFellBack means loading failed and the defaults were returned.
	OutcomeFellBack ConfigOutcome = "fell-back"
)

// LoadResult is the tagged outcome of loading a tenant configuration. Config
// is always complete, whatever the outcome.
type LoadResult struct {
	Slug    string
	Config  ClientConfig
	Outcome ConfigOutcome
	// Reason is the absorbed error when Outcome is OutcomeFellBack.
	Reason error
}

// FellBack reports whether loading failed and defaults were substituted.
func (r LoadResult) FellBack() bool {
	return r.Outcome == OutcomeFellBack
}
