package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/internal/adapters/secondary/theme"
)

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List valid theme selectors",
	Long: `List every theme selector accepted by generate and the HTTP API.
"auto" derives the palette from the deck's own theme colors; the rest are
built-in presets.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	for _, selector := range theme.NewResolver().Selectors() {
		fmt.Fprintln(cmd.OutOrStdout(), selector)
	}
	return nil
}
