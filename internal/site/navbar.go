package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/urls"
)

// Navbar renders the fixed navigation bar. The mobile menu is only emitted
// when menuOpen is set; its toggle links to the page with the flag flipped.
func Navbar(doc *content.Content, menuOpen bool, feature int) g.Node {
	label, glyph := "Open menu", glyphMenu
	if menuOpen {
		label, glyph = "Close menu", glyphClose
	}

	return Nav(Class("fixed top-0 w-full bg-white shadow-md z-50"),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(Class("flex justify-between h-16 items-center"),
				Div(Class("flex items-center"),
					A(Href(urls.Home), Class("text-2xl font-bold text-blue-600"), g.Text(doc.Brand)),
				),
				Div(Class("hidden md:flex space-x-8"),
					navLinks(doc.Nav, "text-gray-700 hover:text-blue-600 transition"),
				),
				Div(Class("md:hidden"),
					A(
						ID("menu-toggle"),
						Href(urls.MenuLink(!menuOpen, feature)),
						Class("text-gray-700 hover:text-blue-600"),
						Aria("label", label),
						Aria("expanded", boolAttr(menuOpen)),
						strokeIcon("h-6 w-6", glyph, "2"),
					),
				),
			),
		),
		g.If(menuOpen,
			Div(ID("mobile-menu"), Class("md:hidden bg-white border-t"),
				Div(Class("px-2 pt-2 pb-3 space-y-1"),
					navLinks(doc.Nav, "block px-3 py-2 text-gray-700 hover:text-blue-600"),
				),
			),
		),
	)
}

func navLinks(links []content.NavLink, class string) g.Node {
	return g.Map(links, func(l content.NavLink) g.Node {
		return A(Href(l.Href), Class(class), g.Text(l.Label))
	})
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
