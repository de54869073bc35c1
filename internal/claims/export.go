// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claims

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/ror-wikidata-claims/pkg/types"
)

// WriteCSV writes one property's rows to <dir>/<label>.csv, creating
// dir if absent and overwriting any previous file. Columns: ROR ID,
// Wikidata ID, then the claim label. The file is written to a temp
// file and renamed so a crash never leaves a truncated CSV behind.
// It returns the path of the written file.
func WriteCSV(dir, label string, rows []types.ClaimRow) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	dest := filepath.Join(dir, sanitizeLabel(label)+".csv")

	tmpFile, err := os.CreateTemp(dir, ".claims-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	cw := csv.NewWriter(tmpFile)
	cw.Write([]string{"ROR ID", "Wikidata ID", label})
	for _, row := range rows {
		cw.Write([]string{row.RORID, row.WikidataID, row.Value})
	}
	cw.Flush()

	writeErr := cw.Error()
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", dest, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return dest, nil
}

// sanitizeLabel keeps filenames deterministic and path-safe: path
// separators and control characters become underscores.
func sanitizeLabel(label string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r < 0x20 {
			return '_'
		}
		return r
	}, label)
}
