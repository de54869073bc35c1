// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikidata queries a SPARQL endpoint for entities carrying a ROR
// identifier and extracts flat claim rows from the results.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/pdiddy/ror-wikidata-claims/internal/httputil"
	"github.com/pdiddy/ror-wikidata-claims/pkg/types"
)

// rorProperty is the Wikidata property holding ROR identifiers.
const rorProperty = "P6782"

// queryTemplate selects every entity that has both a ROR ID and the
// target claim. The pager appends LIMIT and OFFSET clauses per page.
const queryTemplate = `SELECT ?item ?rorID ?value WHERE {
  ?item wdt:` + rorProperty + ` ?rorID .
  ?item wdt:%s ?value .
}`

// propertyIDPattern matches Wikidata property identifiers such as "P281".
var propertyIDPattern = regexp.MustCompile(`^P[0-9]+$`)

// Client issues SPARQL queries against one endpoint. All endpoint
// settings travel in the client; there is no package-level state.
type Client struct {
	HTTP       *http.Client
	Endpoint   string
	UserAgent  string
	Email      string
	Token      string
	MaxRetries int
}

// NewClient builds a Client from a harvest configuration.
func NewClient(httpClient *http.Client, cfg types.HarvestConfig) *Client {
	return &Client{
		HTTP:       httpClient,
		Endpoint:   cfg.Endpoint,
		UserAgent:  cfg.UserAgent,
		Email:      cfg.Email,
		Token:      cfg.Token,
		MaxRetries: cfg.MaxRetries,
	}
}

// buildQuery renders the claim query for one property ID. The ID is
// validated so arbitrary text can never reach the WHERE clause.
func buildQuery(propertyID string) (string, error) {
	if !propertyIDPattern.MatchString(propertyID) {
		return "", fmt.Errorf("invalid property ID %q: want P followed by digits", propertyID)
	}
	return fmt.Sprintf(queryTemplate, propertyID), nil
}

// fetchPage issues one paginated query and returns the raw bindings.
func (c *Client) fetchPage(ctx context.Context, query string, limit, offset int) ([]Binding, error) {
	full := fmt.Sprintf("%s\nLIMIT %d OFFSET %d", query, limit, offset)

	params := url.Values{
		"query":  {full},
		"format": {"json"},
	}
	reqURL := c.Endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/sparql-results+json")
	if c.Email != "" {
		req.Header.Set("From", c.Email)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("SPARQL request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SPARQL endpoint returned HTTP %d", resp.StatusCode)
	}

	var sr sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing SPARQL response: %w", err)
	}
	return sr.Results.Bindings, nil
}

// SPARQL 1.1 JSON results envelope.
type sparqlResponse struct {
	Head    sparqlHead    `json:"head"`
	Results sparqlResults `json:"results"`
}

type sparqlHead struct {
	Vars []string `json:"vars"`
}

type sparqlResults struct {
	Bindings []Binding `json:"bindings"`
}

// Binding is one result row: variable name to bound term.
type Binding map[string]Term

// Term is one bound value in a binding.
type Term struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}
