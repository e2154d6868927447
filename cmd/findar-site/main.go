// Findar-site serves and previews the Findar landing page.
//
// The page is rendered server side from embedded content: a hero banner, the
// feature carousel, navigation, about, contact and footer sections. The
// carousel works with plain links and is upgraded to a live websocket channel
// when JavaScript is available.
//
// Usage:
//
//	findar-site [command] [flags]
//
// See 'findar-site --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/logging"
	"github.com/muurk/findar/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath  string
	contentPath string
	logLevel    string
	logFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "findar-site",
	Short: "Findar landing page server",
	Long: `Serve, preview and export the Findar real-estate app landing page.

Page copy and the feature catalog are embedded in the binary. Use --content
to render a different YAML content file, for example while editing copy.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel, logFormat)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to server config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Path to a content YAML file (default: embedded content)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty = "+logging.LogLevelEnvVar+" or silent")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadContent returns the content named by --content, or fallback, or the embedded default.
func loadContent(fallback string) (*content.Content, error) {
	path := contentPath
	if path == "" {
		path = fallback
	}
	doc, err := content.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return doc, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "findar-site %s\n", version.Full())
	},
}
