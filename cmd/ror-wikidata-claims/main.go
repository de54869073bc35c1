// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ror-wikidata-claims CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ror-wikidata-claims/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds endpoint-etiquette credentials loaded from
// .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the ror-wikidata-claims CLI.
var rootCmd = &cobra.Command{
	Use:   "ror-wikidata-claims",
	Short: "Map ROR IDs to Wikidata claim values",
	Long: `ror-wikidata-claims queries a SPARQL endpoint for Wikidata entities that
carry a ROR identifier and exports, per configured claim property, a CSV
file mapping ROR ID and Wikidata ID to the claim's value.

The harvest subcommand runs the export; properties and their output
labels come from a JSON (or YAML) property-map file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ror-wikidata-claims.yaml or ~/.config/ror-wikidata-claims/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ror-wikidata-claims")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ror-wikidata-claims"))
		}
	}

	viper.SetEnvPrefix("ROR_WIKIDATA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
