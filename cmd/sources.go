package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aziroshin/scraper/internal/scraper"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the registered country sources",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg := scraper.DefaultRegistry()
		for _, s := range reg.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", s.Name(), s.Source())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
