package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/slidesmith/slidesmith/internal/adapters/secondary/config"
)

var (
	generateFormat string
	generateOutput string
	generateTheme  string
	generateTitle  string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [deck.json]",
	Short: "Render a deck file into a presentation document",
	Long: `Read deck JSON from a file (or stdin when the argument is "-") and
write the rendered document next to it. The input may be fenced in a
markdown code block and may contain unescaped quotes inside string values;
both are repaired before parsing.

Example:
  slidesmith generate deck.json
  slidesmith generate deck.json --format pdf --theme ocean
  cat deck.json | slidesmith generate - --output talk.pptx`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "pptx", "Output format: pptx or pdf")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file path (default: derived from input)")
	generateCmd.Flags().StringVarP(&generateTheme, "theme", "t", "", "Theme selector (overrides config)")
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "Document title (default: derived from input file name)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.NewTOMLLoader().Load(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	input := args[0]
	raw, err := readDeck(input)
	if err != nil {
		return err
	}

	title := generateTitle
	if title == "" {
		title = titleFromPath(input, cfg.Generator.DefaultTitle)
	}
	selector := generateTheme
	if selector == "" {
		selector = cfg.Generator.DefaultTheme
	}

	generator := buildGenerator(cfg, verbose)
	result, err := generator.Generate(cmd.Context(), generateFormat, raw, title, selector)
	if err != nil {
		return err
	}

	output := generateOutput
	if output == "" {
		output = outputPath(input, generateFormat)
	}
	if err := os.WriteFile(output, result.Document, 0644); err != nil { // #nosec G306 - generated document, not a secret
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes", output, len(result.Document))
	if n := len(result.Fallbacks); n > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d slide(s) used fallback rendering", n)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ")")
	return nil
}

// readDeck reads the raw deck text from a file or stdin.
func readDeck(input string) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(input) // #nosec G304 - path is operator supplied
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", input, err)
	}
	return string(data), nil
}

// titleFromPath turns an input file name into a presentable document title.
func titleFromPath(input, fallback string) string {
	if input == "-" {
		return fallback
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.TrimSpace(base)
	if base == "" {
		return fallback
	}
	return cases.Title(language.English).String(base)
}

// outputPath derives the output file path from the input path and format.
func outputPath(input, format string) string {
	if input == "-" {
		return "presentation." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
