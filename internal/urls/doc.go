// Package urls provides the route paths and in-page anchors shared by the
// view layer and the HTTP server.
//
// The page links to itself for no-script carousel navigation, and the server
// mounts handlers on the same paths, so both sides read them from here.
//
// Usage:
//
//	import "github.com/muurk/findar/internal/urls"
//
//	href := urls.FeatureLink(3) // "/?feature=3#features"
package urls
