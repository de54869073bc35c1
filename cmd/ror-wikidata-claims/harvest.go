// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ror-wikidata-claims/internal/claims"
	"github.com/pdiddy/ror-wikidata-claims/internal/wikidata"
	"github.com/pdiddy/ror-wikidata-claims/pkg/types"
)

const (
	defaultEndpoint   = "https://query.wikidata.org/sparql"
	defaultOutputDir  = "ror_wikidata_claims"
	defaultLimit      = 10000
	defaultTimeout    = 60 * time.Second
	defaultMaxRetries = 3
	defaultUserAgent  = "ror-wikidata-claims/0.1"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Export claim values for ROR-tagged Wikidata entities",
	Long: `Harvest pages through the SPARQL endpoint once per configured claim
property, selecting every entity that has both a ROR ID and that claim,
and writes one CSV per property into the output directory. A failing
property is reported and skipped; the remaining properties still run.`,
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().StringP("input_file", "i", "", "path to the JSON or YAML property-map file (required)")
	harvestCmd.MarkFlagRequired("input_file")
	harvestCmd.Flags().StringP("output_directory", "d", defaultOutputDir, "directory to store output CSV files")
	harvestCmd.Flags().StringP("endpoint", "e", defaultEndpoint, "SPARQL endpoint URL")
	harvestCmd.Flags().IntP("limit", "l", defaultLimit, "LIMIT value for SPARQL queries")
	harvestCmd.Flags().IntP("offset", "o", 0, "initial OFFSET value for SPARQL queries")
	harvestCmd.Flags().String("email", "", "contact email sent in the From header")
	harvestCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	harvestCmd.Flags().Int("max-retries", defaultMaxRetries, "retries on rate-limited or transient endpoint failures")

	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("input_file")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")
	offset, _ := cmd.Flags().GetInt("offset")

	email := stringSetting(cmd, "email", "email")
	if email == "" {
		email = loadedSecrets.ContactEmail
	}

	cfg := types.HarvestConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Endpoint:   stringSetting(cmd, "endpoint", "endpoint"),
		Limit:      intSetting(cmd, "limit", "limit"),
		Offset:     offset,
		Email:      email,
		Token:      loadedSecrets.EndpointToken,
		MaxRetries: maxRetries,
		OutputDir:  stringSetting(cmd, "output_directory", "output_directory"),
	}
	if cfg.Limit <= 0 {
		return fmt.Errorf("invalid limit %d: must be positive", cfg.Limit)
	}
	if cfg.Offset < 0 {
		return fmt.Errorf("invalid offset %d: must not be negative", cfg.Offset)
	}

	specs, err := claims.LoadPropertyMap(inputFile)
	if err != nil {
		return err
	}

	client := wikidata.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg)

	result := claims.HarvestBatch(context.Background(), client, specs, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d of %d properties failed", result.Failed, result.Total())
	}
	return nil
}

// stringSetting resolves a string option: an explicitly set flag wins,
// then a viper config/env value, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// intSetting resolves an integer option the same way.
func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}
