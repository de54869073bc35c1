// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claims

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ror-wikidata-claims/pkg/types"
)

// summaryFile is written into the output directory after every run.
const summaryFile = "summary.yaml"

// RunSummary is the on-disk record of one harvest run.
type RunSummary struct {
	Endpoint   string            `yaml:"endpoint"`
	Limit      int               `yaml:"limit"`
	Offset     int               `yaml:"offset"`
	Timestamp  time.Time         `yaml:"timestamp"`
	Written    int               `yaml:"written"`
	Failed     int               `yaml:"failed"`
	Properties []PropertySummary `yaml:"properties"`
}

// PropertySummary records one property's counts and outcome.
type PropertySummary struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Rows       int    `yaml:"rows"`
	Pages      int    `yaml:"pages"`
	Skipped    int    `yaml:"skipped,omitempty"`
	OutputFile string `yaml:"output_file,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

// WriteSummary saves the run summary to <output dir>/summary.yaml.
func WriteSummary(cfg types.HarvestConfig, result BatchResult) error {
	summary := RunSummary{
		Endpoint:  cfg.Endpoint,
		Limit:     cfg.Limit,
		Offset:    cfg.Offset,
		Timestamp: time.Now(),
		Written:   result.Written,
		Failed:    result.Failed,
	}
	for _, p := range result.Properties {
		ps := PropertySummary{
			ID:         p.Spec.ID,
			Label:      p.Spec.Label,
			Rows:       p.Rows,
			Pages:      p.Pages,
			Skipped:    p.Skipped,
			OutputFile: p.OutputFile,
		}
		if p.Err != nil {
			ps.Error = p.Err.Error()
		}
		summary.Properties = append(summary.Properties, ps)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}
	data, err := yaml.Marshal(&summary)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	return os.WriteFile(filepath.Join(cfg.OutputDir, summaryFile), data, 0o644)
}
