// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikidata

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/ror-wikidata-claims/pkg/types"
)

// ErrMalformedRow marks a result binding missing a required variable.
// Callers branch on it with errors.Is; malformed rows are skipped, not
// fatal.
var ErrMalformedRow = errors.New("malformed result row")

// ExtractRow converts one raw binding into a ClaimRow. The rorID, item
// and value bindings are required; the Wikidata entity ID is the last
// path segment of the item URI (http://www.wikidata.org/entity/Q42 → Q42).
func ExtractRow(b Binding) (types.ClaimRow, error) {
	ror, err := requireTerm(b, "rorID")
	if err != nil {
		return types.ClaimRow{}, err
	}
	item, err := requireTerm(b, "item")
	if err != nil {
		return types.ClaimRow{}, err
	}
	value, err := requireTerm(b, "value")
	if err != nil {
		return types.ClaimRow{}, err
	}

	return types.ClaimRow{
		RORID:      ror.Value,
		WikidataID: entityID(item.Value),
		Value:      value.Value,
	}, nil
}

// ExtractRows converts a page of bindings, skipping malformed rows with
// a warning on w. It returns the extracted rows and the skip count.
func ExtractRows(page *Page, w io.Writer) ([]types.ClaimRow, int) {
	rows := make([]types.ClaimRow, 0, len(page.Bindings))
	skipped := 0
	for _, b := range page.Bindings {
		row, err := ExtractRow(b)
		if err != nil {
			fmt.Fprintf(w, "  warning: skipping row at offset %d: %v\n", page.Offset, err)
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped
}

func requireTerm(b Binding, name string) (Term, error) {
	term, ok := b[name]
	if !ok || term.Value == "" {
		return Term{}, fmt.Errorf("%w: missing %s binding", ErrMalformedRow, name)
	}
	return term, nil
}

// entityID strips the entity URI down to its Q-number.
func entityID(uri string) string {
	parts := strings.Split(uri, "/")
	return parts[len(parts)-1]
}
