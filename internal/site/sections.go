package site

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/urls"
)

// AboutSection renders the about block; its body is Markdown.
func AboutSection(s content.TextSection) g.Node {
	return Section(ID(urls.AnchorAbout), Class("py-24 bg-white"),
		Div(Class("max-w-4xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeader(s.Badge, s.Heading),
			Div(Class("prose prose-lg max-w-none text-gray-700"), Markdown(s.Body)),
		),
	)
}

// ContactBlock renders the contact section with mail and phone links.
func ContactBlock(s content.ContactSection) g.Node {
	return Section(ID(urls.AnchorContact), Class("py-24 bg-gradient-to-b from-blue-50 to-white"),
		Div(Class("max-w-4xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			sectionHeader(s.Badge, s.Heading),
			Div(Class("prose prose-lg mx-auto text-gray-700 mb-10"), Markdown(s.Body)),
			Div(Class("flex flex-col sm:flex-row justify-center gap-4"),
				g.If(s.Email != "",
					A(Href("mailto:"+s.Email), Class("bg-blue-600 hover:bg-blue-700 text-white px-8 py-4 rounded-lg font-semibold transition"), g.Text(s.Email)),
				),
				g.If(s.Phone != "",
					A(Href("tel:"+s.Phone), Class("border border-blue-600 text-blue-600 hover:bg-blue-50 px-8 py-4 rounded-lg font-semibold transition"), g.Text(s.Phone)),
				),
			),
		),
	)
}

// PageFooter renders the footer with the brand, nav links and copyright line.
func PageFooter(doc *content.Content) g.Node {
	return Footer(Class("bg-gray-900 text-gray-300 py-12"),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex flex-col md:flex-row justify-between gap-8"),
			Div(
				P(Class("text-2xl font-bold text-white"), g.Text(doc.Brand)),
				P(Class("mt-2 text-sm"), g.Text(doc.Footer.Tagline)),
			),
			Div(Class("flex flex-wrap gap-6"), navLinks(doc.Nav, "hover:text-white transition")),
		),
		P(Class("mt-8 text-center text-sm text-gray-500"),
			g.Text(fmt.Sprintf("© %d %s", time.Now().Year(), doc.Footer.Copyright)),
		),
	)
}

func sectionHeader(badge, heading string) g.Node {
	return Div(Class("text-center mb-12"),
		g.If(badge != "",
			Div(Class("inline-block px-4 py-2 bg-blue-100 text-blue-600 rounded-full text-sm font-semibold mb-4"), g.Text(badge)),
		),
		H2(Class("text-4xl sm:text-5xl font-bold text-gray-900"), g.Text(heading)),
	)
}
