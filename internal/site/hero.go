package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/urls"
)

// HeroSection renders the banner with the download call to action.
func HeroSection(h content.Hero) g.Node {
	return Section(ID(urls.AnchorHero), Class("pt-20 bg-gradient-to-br from-blue-50 to-blue-100 min-h-screen flex items-center"),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-16"),
			Div(Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
				Div(
					H1(Class("text-4xl sm:text-5xl lg:text-6xl font-bold text-gray-900 mb-6"),
						g.Text(h.Headline+" "),
						Span(Class("text-blue-600"), g.Text(h.Highlight)),
					),
					P(Class("text-lg sm:text-xl text-gray-700 mb-8"), g.Text(h.Lead)),
					A(Href(h.CTAURL),
						Class("inline-flex bg-blue-600 hover:bg-blue-700 text-white px-8 py-4 rounded-lg text-lg font-semibold transition shadow-lg hover:shadow-xl items-center space-x-3"),
						svg("w-6 h-6", IconDef{Path: glyphAndroid, Filled: true}),
						Span(g.Text(h.CTALabel)),
					),
				),
				Div(Class("relative"),
					Div(Class("relative z-10 bg-white rounded-2xl shadow-2xl p-6"),
						Div(Class("aspect-[9/19] bg-gray-200 rounded-lg overflow-hidden"),
							Div(Class("w-full h-full flex items-center justify-center text-gray-500"),
								P(Class("text-center px-4"), g.Text(h.ScreenshotCaption)),
							),
						),
					),
					Div(Class("absolute -top-6 -right-6 w-72 h-72 bg-blue-200 rounded-full opacity-50 blur-3xl")),
					Div(Class("absolute -bottom-6 -left-6 w-72 h-72 bg-blue-300 rounded-full opacity-50 blur-3xl")),
				),
			),
		),
	)
}
