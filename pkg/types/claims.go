// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model and configuration structs shared
// across the harvester stages.
package types

// PropertySpec identifies one Wikidata claim property to harvest.
type PropertySpec struct {
	// ID is the Wikidata property identifier (e.g. "P281").
	ID string `json:"id" yaml:"id"`

	// Label is the human-readable name used for the output file and
	// the CSV value column (e.g. "postalCode").
	Label string `json:"label" yaml:"label"`
}

// ClaimRow is one extracted result: an organization's ROR ID, its
// Wikidata entity ID, and the value of the harvested claim. Rows have
// no identity beyond their three fields and duplicates are kept.
type ClaimRow struct {
	RORID      string `json:"ror_id" yaml:"ror_id"`
	WikidataID string `json:"wikidata_id" yaml:"wikidata_id"`
	Value      string `json:"value" yaml:"value"`
}
