package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/internal/adapters/secondary/parser"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/pdf"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/pptx"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/theme"
	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/services"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slidesmith",
	Short: "Generate presentation documents from AI-authored deck JSON",
	Long: `slidesmith turns semi-structured deck JSON, as produced by language
models, into finished presentation files. It repairs common JSON damage in
the input, resolves a color theme, assigns a visual template to every slide,
and renders the result as an editable presentation or a paginated document.`,
	Version: Version,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: ./slidesmith.toml)")
}

// buildGenerator wires the generation service from configuration.
func buildGenerator(cfg *entities.Config, verbose bool) *services.GeneratorService {
	logger := services.NewLogger(verbose || cfg.Logging.Verbose, cfg.Logging.GetLevel())
	return services.NewGeneratorService(
		parser.NewDeckParser(),
		theme.NewResolver(),
		logger,
		pptx.NewRenderer(cfg.Generator.Creator),
		pdf.NewRenderer(cfg.Generator.Creator),
	)
}
