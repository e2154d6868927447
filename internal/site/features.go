package site

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/muurk/findar/internal/carousel"
	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/urls"
)

// CarouselID is the element id of the swappable carousel panel.
const CarouselID = "carousel"

// FeaturesSection renders the section header, the carousel panel and the
// section call to action.
func FeaturesSection(section content.FeatureSection, view CarouselView) g.Node {
	return Section(ID(urls.AnchorFeatures), Class("py-24 bg-gradient-to-b from-white to-blue-50"),
		Div(Class("max-w-[1400px] mx-auto px-4 sm:px-6 lg:px-8"),
			Div(Class("text-center mb-16"),
				Div(Class("inline-block px-4 py-2 bg-blue-100 text-blue-600 rounded-full text-sm font-semibold mb-4"),
					g.Text(section.Badge),
				),
				H2(Class("text-4xl sm:text-5xl font-bold text-gray-900 mb-6"), g.Text(section.Heading)),
				P(Class("text-xl text-gray-600 max-w-3xl mx-auto"), g.Text(section.Subheading)),
			),
			CarouselPanel(view),
			g.If(section.CTALabel != "",
				Div(Class("mt-16 text-center"),
					A(Href(section.CTAURL),
						Class("inline-block bg-gradient-to-r from-blue-600 to-cyan-600 text-white px-10 py-4 rounded-full font-semibold text-lg hover:from-blue-700 hover:to-cyan-700 transform hover:scale-105 transition-all duration-300 shadow-lg hover:shadow-xl"),
						g.Text(section.CTALabel),
					),
				),
			),
		),
	)
}

// CarouselPanel renders the slider box: the themed screenshot side, the
// active feature copy, one indicator per catalog entry and the previous/next
// buttons. It is also the fragment returned over the live channel.
func CarouselPanel(view CarouselView) g.Node {
	theme := ThemeOf(view.Active.Theme)

	return Div(
		ID(CarouselID),
		Class("bg-white rounded-3xl shadow-2xl overflow-hidden relative"),
		Data("active", strconv.Itoa(view.Index)),
		Data("total", strconv.Itoa(len(view.Items))),
		Div(Class("grid grid-cols-1 lg:grid-cols-2"),
			Div(Class("bg-gradient-to-br "+theme.Gradient+" p-16 flex items-center justify-center relative overflow-hidden min-h-[600px]"),
				Div(Class("absolute -top-20 -left-20 w-64 h-64 bg-white/20 rounded-full blur-3xl")),
				Div(Class("absolute -bottom-20 -right-20 w-64 h-64 bg-white/20 rounded-full blur-3xl")),
				phoneMockup(view, theme),
			),
			Div(Class("p-16 flex flex-col justify-center"),
				Div(Class("w-24 h-24 bg-gradient-to-br "+theme.Gradient+" rounded-2xl flex items-center justify-center text-white mb-8 shadow-xl"),
					Icon(view.Active.Icon, "w-12 h-12"),
				),
				H3(Class("text-5xl font-bold text-gray-900 mb-8"), g.Text(view.Active.Title)),
				P(Class("text-2xl text-gray-600 leading-relaxed mb-10"), g.Text(view.Active.Description)),
				Div(Class("space-y-6"),
					Div(Class("flex space-x-3"), indicators(view, theme)),
				),
			),
		),
		stepButton(carousel.ActionRetreat, view.Prev, "left-4", glyphPrev, "Previous feature"),
		stepButton(carousel.ActionAdvance, view.Next, "right-4", glyphNext, "Next feature"),
	)
}

func phoneMockup(view CarouselView, theme ThemeStyle) g.Node {
	return Div(Class("relative z-10"),
		Div(Class("w-80 h-[640px] bg-gray-900 rounded-[3rem] shadow-2xl p-3 relative"),
			Div(Class("absolute top-0 left-1/2 transform -translate-x-1/2 w-40 h-6 bg-gray-900 rounded-b-3xl z-10")),
			Div(Class("w-full h-full bg-white rounded-[2.5rem] overflow-hidden flex items-center justify-center relative"),
				Div(Class("w-full h-full bg-gradient-to-br "+theme.Gradient+" opacity-10 flex items-center justify-center"),
					Div(Class("text-gray-400 scale-150"), Icon(view.Active.Icon, "w-12 h-12")),
				),
				g.If(view.Caption != "",
					Div(Class("absolute bottom-8 text-center"),
						P(Class("text-gray-500 text-sm"), g.Text(view.Caption)),
					),
				),
			),
		),
	)
}

func indicators(view CarouselView, theme ThemeStyle) g.Node {
	dots := make([]g.Node, 0, len(view.Items))
	for i, on := range view.Indicators {
		dots = append(dots, A(
			Href(urls.FeatureLink(i)),
			c.Classes{
				"h-3 rounded-full transition-all duration-300": true,
				"w-16 bg-gradient-to-r " + theme.Gradient:      on,
				"w-3 bg-gray-300 hover:bg-gray-400":            !on,
			},
			Data("carousel-action", string(carousel.ActionSelect)),
			Data("index", strconv.Itoa(i)),
			Aria("label", fmt.Sprintf("Show %s", view.Items[i].Title)),
			g.If(on, Aria("current", "true")),
		))
	}
	return g.Group(dots)
}

func stepButton(action carousel.Action, target int, side, glyph, label string) g.Node {
	return A(
		Href(urls.FeatureLink(target)),
		Class("absolute "+side+" top-1/2 transform -translate-y-1/2 w-14 h-14 rounded-full bg-white shadow-xl hover:shadow-2xl flex items-center justify-center transition-all hover:scale-110 z-20"),
		Data("carousel-action", string(action)),
		Data("index", strconv.Itoa(target)),
		Aria("label", label),
		strokeIcon("w-7 h-7 text-gray-700", glyph, "2.5"),
	)
}
