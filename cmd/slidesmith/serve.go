package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	httpadapter "github.com/slidesmith/slidesmith/internal/adapters/primary/http"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/config"
)

var (
	servePort int
	serveHost string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the generation HTTP API",
	Long: `Start an HTTP server exposing deck generation as a JSON API.

POST /api/generate/pptx and /api/generate/pdf accept {"deck": "...",
"title": "...", "theme": "..."} and return the binary document. GET
/api/themes lists theme selectors.

Example:
  slidesmith serve
  slidesmith serve --port 9000 --host 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to serve on (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.NewTOMLLoader().Load(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if verbose {
		cfg.Logging.Verbose = true
	}

	server := httpadapter.NewServer(buildGenerator(cfg, verbose), cfg)
	if err := server.Start(cmd.Context()); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s:%d\n", cfg.Server.Host, cfg.Server.Port)

	<-cmd.Context().Done()
	// The command context is already canceled; shut down on a fresh one so
	// the drain window is honored.
	return server.Stop(context.Background())
}
