// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikidata

import (
	"context"
	"fmt"
)

// Page is one request/response cycle of the pagination loop.
type Page struct {
	// Offset is the OFFSET this page was fetched at.
	Offset int

	// Bindings holds the raw rows returned for this page (0..limit).
	Bindings []Binding
}

// Pager walks a property's results in fixed-size pages. It is a finite
// sequence: the offset advances by limit after every fetch, and a page
// shorter than the limit ends the sequence. A fresh Pager always starts
// from its initial offset; there is no mid-run restart.
type Pager struct {
	client *Client
	query  string
	limit  int
	offset int
	done   bool
}

// Pages returns a Pager over all results for one claim property,
// starting at the given offset.
func (c *Client) Pages(propertyID string, limit, offset int) (*Pager, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit %d: must be positive", limit)
	}
	if offset < 0 {
		return nil, fmt.Errorf("invalid offset %d: must not be negative", offset)
	}
	query, err := buildQuery(propertyID)
	if err != nil {
		return nil, err
	}
	return &Pager{
		client: c,
		query:  query,
		limit:  limit,
		offset: offset,
	}, nil
}

// Next fetches the next page. It returns nil once the sequence is
// exhausted: after a short page has been returned, or immediately when
// a page comes back empty. A full page (exactly limit rows) always
// triggers one more request; when the total row count is an exact
// multiple of the limit that last request returns zero rows.
func (p *Pager) Next(ctx context.Context) (*Page, error) {
	if p.done {
		return nil, nil
	}

	bindings, err := p.client.fetchPage(ctx, p.query, p.limit, p.offset)
	if err != nil {
		p.done = true
		return nil, fmt.Errorf("querying page at offset %d: %w", p.offset, err)
	}

	page := &Page{Offset: p.offset, Bindings: bindings}
	p.offset += p.limit
	if len(bindings) < p.limit {
		p.done = true
	}
	if len(bindings) == 0 {
		return nil, nil
	}
	return page, nil
}
