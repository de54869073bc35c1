// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claims

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/ror-wikidata-claims/internal/wikidata"
	"github.com/pdiddy/ror-wikidata-claims/pkg/types"
)

// PropertyResult holds the outcome of harvesting one claim property.
type PropertyResult struct {
	Spec       types.PropertySpec
	Rows       int
	Pages      int
	Skipped    int
	OutputFile string
	Err        error
}

// BatchResult holds the outcome of a whole harvest run.
type BatchResult struct {
	Written    int
	Failed     int
	Properties []PropertyResult
}

// Total returns the number of properties processed.
func (r BatchResult) Total() int {
	return r.Written + r.Failed
}

// HasFailures reports whether any property failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// HarvestProperty drains all pages for one property, extracts the
// rows, and writes the property's CSV. Rows are accumulated in memory
// and the file is written only once pagination has completed, so a
// query failure never leaves a partial CSV on disk.
func HarvestProperty(ctx context.Context, client *wikidata.Client, spec types.PropertySpec, cfg types.HarvestConfig, w io.Writer) (PropertyResult, error) {
	result := PropertyResult{Spec: spec}

	pager, err := client.Pages(spec.ID, cfg.Limit, cfg.Offset)
	if err != nil {
		return result, err
	}

	var rows []types.ClaimRow
	for {
		page, err := pager.Next(ctx)
		if err != nil {
			return result, err
		}
		if page == nil {
			break
		}
		result.Pages++
		fmt.Fprintf(w, "  page at offset %d: %d rows\n", page.Offset, len(page.Bindings))

		extracted, skipped := wikidata.ExtractRows(page, w)
		result.Skipped += skipped
		rows = append(rows, extracted...)
	}

	path, err := WriteCSV(cfg.OutputDir, spec.Label, rows)
	if err != nil {
		return result, err
	}
	result.Rows = len(rows)
	result.OutputFile = path
	return result, nil
}

// HarvestBatch processes every property sequentially, printing
// per-property status to w. A query failure aborts only that property;
// the batch continues and the failure is counted in the result. After
// the loop a YAML run summary is written next to the CSVs.
func HarvestBatch(ctx context.Context, client *wikidata.Client, specs []types.PropertySpec, cfg types.HarvestConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, spec := range specs {
		fmt.Fprintf(w, "harvesting %s (%s)\n", spec.Label, spec.ID)

		res, err := HarvestProperty(ctx, client, spec, cfg, w)
		if err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", spec.Label, err)
			res.Err = err
			result.Failed++
		} else {
			fmt.Fprintf(w, "wrote %s (%d rows, %d pages, %d skipped)\n",
				res.OutputFile, res.Rows, res.Pages, res.Skipped)
			result.Written++
		}
		result.Properties = append(result.Properties, res)
	}

	fmt.Fprintf(w, "\nHarvest summary: %d written, %d failed (total: %d)\n",
		result.Written, result.Failed, result.Total())

	if err := WriteSummary(cfg, result); err != nil {
		fmt.Fprintf(w, "warning: writing run summary: %v\n", err)
	}
	return result
}
