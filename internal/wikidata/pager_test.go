// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikidata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// drain pulls every page from the pager and returns the collected
// bindings.
func drain(t *testing.T, p *Pager) []Binding {
	t.Helper()
	var all []Binding
	for {
		page, err := p.Next(context.Background())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if page == nil {
			return all
		}
		all = append(all, page.Bindings...)
	}
}

func TestPagerOffsetSequence(t *testing.T) {
	// 25 rows at page size 10: pages of 10, 10 and 5.
	all := generateBindings(25)
	var offsets []int
	ts := sparqlStub(t, all, &offsets)
	defer ts.Close()

	c := testClient(ts.URL, ts.Client())
	p, err := c.Pages("P281", 10, 0)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	got := drain(t, p)
	if len(got) != 25 {
		t.Errorf("collected %d rows, want 25", len(got))
	}
	if want := []int{0, 10, 20}; !reflect.DeepEqual(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
}

func TestPagerShortPageStops(t *testing.T) {
	// 3 rows at page size 10: a single short page must end pagination.
	all := generateBindings(3)
	var offsets []int
	ts := sparqlStub(t, all, &offsets)
	defer ts.Close()

	c := testClient(ts.URL, ts.Client())
	p, err := c.Pages("P281", 10, 0)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	got := drain(t, p)
	if len(got) != 3 {
		t.Errorf("collected %d rows, want 3", len(got))
	}
	if want := []int{0}; !reflect.DeepEqual(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
}

func TestPagerExactMultipleIssuesExtraRequest(t *testing.T) {
	// 20 rows at page size 10: two full pages plus one empty request.
	all := generateBindings(20)
	var offsets []int
	ts := sparqlStub(t, all, &offsets)
	defer ts.Close()

	c := testClient(ts.URL, ts.Client())
	p, err := c.Pages("P281", 10, 0)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	got := drain(t, p)
	if len(got) != 20 {
		t.Errorf("collected %d rows, want 20", len(got))
	}
	if want := []int{0, 10, 20}; !reflect.DeepEqual(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
}

func TestPagerEmptyResults(t *testing.T) {
	var offsets []int
	ts := sparqlStub(t, nil, &offsets)
	defer ts.Close()

	c := testClient(ts.URL, ts.Client())
	p, err := c.Pages("P281", 10, 0)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	page, err := p.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if page != nil {
		t.Errorf("page = %+v, want nil for empty results", page)
	}
	if want := []int{0}; !reflect.DeepEqual(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
}

func TestPagerStartingOffset(t *testing.T) {
	all := generateBindings(30)
	var offsets []int
	ts := sparqlStub(t, all, &offsets)
	defer ts.Close()

	c := testClient(ts.URL, ts.Client())
	p, err := c.Pages("P281", 10, 20)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	got := drain(t, p)
	if len(got) != 10 {
		t.Errorf("collected %d rows, want 10", len(got))
	}
	// The first full page still triggers one follow-up request.
	if want := []int{20, 30}; !reflect.DeepEqual(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
}

func TestPagerExhaustedAfterError(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	c := testClient(ts.URL, ts.Client())
	p, err := c.Pages("P281", 10, 0)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	if _, err := p.Next(context.Background()); err == nil {
		t.Fatal("expected query error")
	}
	// A failed pager stays exhausted instead of re-requesting.
	page, err := p.Next(context.Background())
	if err != nil || page != nil {
		t.Errorf("Next after error = (%+v, %v), want (nil, nil)", page, err)
	}
	if calls != 1 {
		t.Errorf("endpoint called %d times, want 1", calls)
	}
}

func TestPagesValidation(t *testing.T) {
	c := testClient("http://unused.invalid", &http.Client{})

	if _, err := c.Pages("P281", 0, 0); err == nil {
		t.Error("zero limit accepted")
	}
	if _, err := c.Pages("P281", -5, 0); err == nil {
		t.Error("negative limit accepted")
	}
	if _, err := c.Pages("P281", 10, -1); err == nil {
		t.Error("negative offset accepted")
	}
	if _, err := c.Pages("nonsense", 10, 0); err == nil {
		t.Error("invalid property ID accepted")
	}
}
