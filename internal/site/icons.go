package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muurk/findar/internal/content"
)

// IconDef is an SVG glyph on a 24x24 view box.
type IconDef struct {
	Path   string
	Filled bool // filled glyphs use fill, the rest a 2px stroke
}

// Icons maps icon names from the content catalog to glyphs.
var Icons = map[content.Icon]IconDef{
	content.IconSearch: {Path: "M21 21l-6-6m2-5a7 7 0 11-14 0 7 7 0 0114 0z"},
	content.IconHeart: {
		Path:   "M12 21.35l-1.45-1.32C5.4 15.36 2 12.28 2 8.5 2 5.42 4.42 3 7.5 3c1.74 0 3.41.81 4.5 2.09C13.09 3.81 14.76 3 16.5 3 19.58 3 22 5.42 22 8.5c0 3.78-3.4 6.86-8.55 11.54L12 21.35z",
		Filled: true,
	},
	content.IconHome:   {Path: "M3 12l2-2m0 0l7-7 7 7M5 10v10a1 1 0 001 1h3m10-11l2 2m-2-2v10a1 1 0 01-1 1h-3m-6 0a1 1 0 001-1v-4a1 1 0 011-1h2a1 1 0 011 1v4a1 1 0 001 1m-6 0h6"},
	content.IconBell:   {Path: "M15 17h5l-1.405-1.405A2.032 2.032 0 0118 14.158V11a6.002 6.002 0 00-4-5.659V5a2 2 0 10-4 0v.341C7.67 6.165 6 8.388 6 11v3.159c0 .538-.214 1.055-.595 1.436L4 17h5m6 0v1a3 3 0 11-6 0v-1m6 0H9"},
	content.IconChat:   {Path: "M8 12h.01M12 12h.01M16 12h.01M21 12c0 4.418-4.03 8-9 8a9.863 9.863 0 01-4.255-.949L3 20l1.395-3.72C3.512 15.042 3 13.574 3 12c0-4.418 4.03-8 9-8s9 3.582 9 8z"},
	content.IconShield: {Path: "M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z"},
}

// Glyphs used by the page chrome rather than the catalog.
const (
	glyphPrev    = "M15 19l-7-7 7-7"
	glyphNext    = "M9 5l7 7-7 7"
	glyphMenu    = "M4 6h16M4 12h16M4 18h16"
	glyphClose   = "M6 18L18 6M6 6l12 12"
	glyphAndroid = "M17.6,9.48l1.84-3.18c0.16-0.31,0.04-0.69-0.26-0.85c-0.29-0.15-0.65-0.06-0.83,0.22l-1.88,3.24 c-2.86-1.21-6.08-1.21-8.94,0L5.65,5.67c-0.19-0.29-0.58-0.38-0.87-0.2C4.5,5.65,4.41,6.01,4.56,6.3L6.4,9.48 C3.3,11.25,1.28,14.44,1,18h22C22.72,14.44,20.7,11.25,17.6,9.48z M7,15.25c-0.69,0-1.25-0.56-1.25-1.25 c0-0.69,0.56-1.25,1.25-1.25S8.25,13.31,8.25,14C8.25,14.69,7.69,15.25,7,15.25z M17,15.25c-0.69,0-1.25-0.56-1.25-1.25 c0-0.69,0.56-1.25,1.25-1.25s1.25,0.56,1.25,1.25C18.25,14.69,17.69,15.25,17,15.25z"
)

// Icon renders a catalog icon. Unknown names render nothing.
func Icon(name content.Icon, class string) g.Node {
	def, ok := Icons[name]
	if !ok {
		return nil
	}
	return svg(class, def)
}

func strokeIcon(class, path string, width string) g.Node {
	return g.El("svg",
		Class(class),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("stroke-width", width),
			g.Attr("d", path),
		),
	)
}

func svg(class string, def IconDef) g.Node {
	if !def.Filled {
		return strokeIcon(class, def.Path, "2")
	}
	return g.El("svg",
		Class(class),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "currentColor"),
		g.Attr("aria-hidden", "true"),
		g.El("path", g.Attr("d", def.Path)),
	)
}
