// Package server serves the Findar landing page over HTTP.
//
// Every page request mounts a fresh feature carousel, applies the requested
// start position and renders the whole document server side, so the page
// works with JavaScript disabled: the indicator dots and arrows are plain
// links to "/?feature=i". The embedded carousel script upgrades those links
// to a websocket channel where each connection owns its own carousel and
// receives the re-rendered panel after every transition.
//
// # Routes
//
//	GET /                   page; ?feature=i picks the start feature, ?menu=open opens the mobile menu
//	GET /features/{index}   page focused on one feature, 404 for an unknown index
//	GET /api/features       catalog as JSON with per-feature permalinks (CORS enabled)
//	GET /api/carousel       stateless transition: ?feature=i&action=advance|retreat|select&to=j
//	GET /ws/carousel        live carousel channel
//	GET /static/carousel.js progressive enhancement script
//	GET /healthz            liveness probe
//
// Out-of-range feature indexes in query strings are clamped into the catalog.
// Explicit selections (the permalink, the "to" parameter and websocket select
// messages) are rejected instead and the carousel keeps its position.
//
// # Live Channel Messages
//
// Client to server:
//
//	{"action": "advance"}
//	{"action": "select", "index": 3}
//
// A select without an index is rejected like an out-of-range one.
//
// Server to client:
//
//	{"active_index": 3, "title": "...", "description": "...", "theme": "amber-orange",
//	 "icon": "bell", "indicators": [false, false, false, true, false, false], "html": "<div id=\"carousel\" ..."}
//	{"error": "carousel: index out of range: 9 not in [0, 6)"}
//
// # Usage Example
//
//	cfg, _ := config.Load("")
//	doc, _ := content.Load()
//
//	srv, err := server.New(cfg, doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Blocks until SIGINT or SIGTERM
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// On SIGINT or SIGTERM the server withdraws its mDNS advertisement and stops
// accepting carousel connections. Live connections get a close frame, then the
// server waits up to the configured shutdown timeout for in-flight requests.
package server
