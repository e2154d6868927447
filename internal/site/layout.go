package site

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/urls"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

// Page renders the full landing page document.
func Page(doc *content.Content, state PageState) g.Node {
	view := NewCarouselView(doc.Features, state.Carousel)

	return c.HTML5(c.HTML5Props{
		Title:       doc.Brand + " - " + doc.Hero.Headline + " " + doc.Hero.Highlight,
		Description: doc.Hero.Lead,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Script(Src(tailwindCDN)),
			Script(Src(urls.CarouselJS), Defer()),
		},
		Body: []g.Node{
			Main(Class("min-h-screen"),
				Navbar(doc, state.MenuOpen, view.Index),
				HeroSection(doc.Hero),
				FeaturesSection(doc.Features, view),
				AboutSection(doc.About),
				ContactBlock(doc.Contact),
				PageFooter(doc),
			),
		},
	})
}
