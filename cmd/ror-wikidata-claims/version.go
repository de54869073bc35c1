package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of ror-wikidata-claims",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ror-wikidata-claims %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
