package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	g "maragu.dev/gomponents"

	"github.com/muurk/findar/internal/config"
	"github.com/muurk/findar/internal/discovery"
	"github.com/muurk/findar/internal/logging"
	"github.com/muurk/findar/internal/server"
	"github.com/muurk/findar/internal/site"
	"github.com/muurk/findar/internal/tui"
)

// Serve command flags
var (
	host         string
	port         int
	advertise    bool
	instanceName string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page",
	Long: `Start the HTTP server for the landing page.

Settings are resolved from built-in defaults, then the config file, then
FINDAR_* environment variables (for example FINDAR_PORT=9000), then flags.
With --advertise the server registers itself over mDNS so 'findar-site scan'
on another machine can find it.`,
	Example: `  # Serve on the default port 8080
  findar-site serve

  # Serve on a custom port with debug logging
  findar-site serve --port 9000 --log-level debug

  # Serve edited copy and advertise on the LAN
  findar-site serve --content ./content.yaml --advertise --name "Findar Staging"`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "", "Listen host (empty = all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", 8080, "Listen port")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Advertise the server over mDNS")
	serveCmd.Flags().StringVar(&instanceName, "name", "", "mDNS instance name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = host
	}
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("advertise") {
		cfg.Advertise = advertise
	}
	if flags.Changed("name") {
		cfg.InstanceName = instanceName
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	doc, err := loadContent(cfg.ContentPath)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, doc)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://localhost:%d/\n", doc.Brand, cfg.Port)
	return srv.Start()
}

// Preview command flags
var previewFeature int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the feature carousel in the terminal",
	Long: `Browse the feature carousel in an interactive terminal view.

Use the arrow keys (or h/l) to move, 1-9 to jump and q to quit. When the
output is not a terminal a plain listing is printed instead.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewFeature, "feature", 0, "Active feature index (0-based)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := loadContent("")
	if err != nil {
		return err
	}

	model, err := tui.New(doc)
	if err != nil {
		return err
	}
	if err := model.SelectIndex(previewFeature); err != nil {
		return fmt.Errorf("invalid --feature: %w", err)
	}

	if !tui.IsTerminal(os.Stdout) {
		return tui.WritePlain(cmd.OutOrStdout(), doc, model.ActiveIndex())
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}

// Features command flags
var featuresFormat string

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the feature catalog",
	Example: `  # Human-readable listing
  findar-site features

  # JSON for scripting
  findar-site features --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadContent("")
		if err != nil {
			return err
		}
		switch featuresFormat {
		case "text":
			return tui.WritePlain(cmd.OutOrStdout(), doc, -1)
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc.Features.Items)
		default:
			return fmt.Errorf("unknown format %q (expected text or json)", featuresFormat)
		}
	},
}

func init() {
	featuresCmd.Flags().StringVar(&featuresFormat, "format", "text", "Output format (text, json)")
}

// Export command flags
var (
	exportFeature  int
	exportOutput   string
	exportMenuOpen bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the page to static HTML",
	Long: `Render the landing page to a static HTML document.

The document is self-contained apart from the Tailwind CDN. Carousel links
point at /?feature=i and need a running server to navigate.`,
	Example: `  # Write the page to stdout
  findar-site export

  # Export with the third feature active
  findar-site export --feature 2 --output features-2.html`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportFeature, "feature", 0, "Active feature index (0-based)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().BoolVar(&exportMenuOpen, "menu-open", false, "Render with the mobile menu open")
}

func runExport(cmd *cobra.Command, args []string) error {
	doc, err := loadContent("")
	if err != nil {
		return err
	}

	ctrl, err := site.NewCarousel(doc)
	if err != nil {
		return err
	}
	if err := ctrl.SelectIndex(exportFeature); err != nil {
		return fmt.Errorf("invalid --feature: %w", err)
	}

	page := site.Page(doc, site.PageState{Carousel: ctrl, MenuOpen: exportMenuOpen})

	if exportOutput == "" {
		if err := page.Render(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
		return nil
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutput, err)
	}
	if err := renderAndClose(f, page); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", exportOutput)
	return nil
}

// renderAndClose renders page into wc and closes it. A close failure is
// reported even when rendering succeeded.
func renderAndClose(wc io.WriteCloser, page g.Node) error {
	if err := page.Render(wc); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

// Scan command flags
var scanTimeout int

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find Findar site servers on the network",
	Long: `Browse for site servers advertised over mDNS/DNS-SD.

Servers started with 'findar-site serve --advertise' register the
` + discovery.ServiceType + ` service and appear here with their page URL.`,
	Example: `  # Scan for 5 seconds (default)
  findar-site scan

  # Longer scan for slow networks
  findar-site scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for Findar site servers (timeout: %ds)...\n\n", scanTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second

	instances, err := scanner.Scan(context.Background())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(instances) == 0 {
		fmt.Fprintln(out, "No servers found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		fmt.Fprintln(out, "  - Start the server with 'findar-site serve --advertise'")
		fmt.Fprintln(out, "  - Check both machines are on the same network segment")
		fmt.Fprintln(out, "  - Allow mDNS (UDP 5353) through the firewall")
		return nil
	}

	fmt.Fprintf(out, "Found %d server(s):\n\n", len(instances))
	for i, inst := range instances {
		fmt.Fprintf(out, "%d. %s\n", i+1, inst.Name)
		fmt.Fprintf(out, "   Host:    %s\n", inst.Host)
		fmt.Fprintf(out, "   URL:     %s\n", inst.URL())
		if v := inst.Metadata["version"]; v != "" {
			fmt.Fprintf(out, "   Version: %s\n", v)
		}
		fmt.Fprintln(out)
	}
	return nil
}
