package types

import "time"

// HTTPConfig holds shared HTTP settings for components that talk to the
// SPARQL endpoint.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "ror-wikidata-claims/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// HarvestConfig holds settings for a harvest run. Every knob the query
// runner needs travels in this struct rather than in package state.
type HarvestConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the SPARQL endpoint URL.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Limit is the page size used in SPARQL LIMIT clauses (default 10000).
	Limit int `json:"limit" yaml:"limit"`

	// Offset is the starting OFFSET for the first page (default 0).
	Offset int `json:"offset" yaml:"offset"`

	// Email is an optional contact address sent in the From header,
	// per Wikimedia User-Agent etiquette.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// Token is an optional bearer token for authenticated endpoints.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// MaxRetries is the number of retry attempts for rate-limited or
	// transiently failing requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// OutputDir is the directory CSV files are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
