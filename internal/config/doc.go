// Package config loads the Findar site server configuration.
//
// Settings are resolved in three layers, each overriding the previous one:
//
//  1. Defaults from Default()
//  2. An optional YAML file (findar-site serve --config site.yaml)
//  3. FINDAR_* environment variables (FINDAR_PORT=9000, FINDAR_ADVERTISE=true)
//
// Command-line flags are applied on top by the caller.
//
// # File Location
//
// When no path is given, the file is looked up in the platform configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/findar/site.yaml or $HOME/.config/findar/site.yaml
//   - macOS: $HOME/.config/findar/site.yaml
//   - Windows: %LOCALAPPDATA%\findar\site.yaml
//
// A missing file is not an error.
//
// # Example
//
//	host: 0.0.0.0
//	port: 8080
//	log_level: info
//	log_format: json
//	content_path: /etc/findar/content.yaml
//	advertise: true
//	allowed_origins:
//	  - https://findar.app
//	shutdown_timeout: 10s
package config
