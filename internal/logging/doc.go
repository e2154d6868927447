// Package logging provides structured logging for the Findar site server.
//
// This package wraps a zap logger with convenience functions for the common
// logging patterns of the server: HTTP requests, live carousel connections and
// carousel events.
//
// # Log Levels
//
//   - Debug: query parsing fallbacks, websocket ping/pong, rendered sizes
//   - Info: server lifecycle, requests, connections
//   - Warn: rejected carousel events, slow shutdown
//   - Error: render failures, listener errors
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize("debug", "console"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// An empty level falls back to the FINDAR_LOG_LEVEL environment variable; if
// that is unset too, logging is silent. The "json" format emits one JSON
// object per line for log shippers; anything else uses the console encoder.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
