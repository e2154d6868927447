package site

import (
	"strings"

	g "maragu.dev/gomponents"

	"github.com/muurk/findar/internal/carousel"
	"github.com/muurk/findar/internal/content"
)

// Carousel is the controller type the page renders from.
type Carousel = carousel.Controller[content.FeatureRecord]

// NewCarousel builds a carousel over the catalog of c with the first feature active.
func NewCarousel(c *content.Content) (*Carousel, error) {
	return carousel.New(c.Features.Items)
}

// CarouselView is everything the carousel markup needs, derived from a
// controller at render time.
type CarouselView struct {
	Items      []content.FeatureRecord
	Active     content.FeatureRecord
	Index      int
	Indicators []bool
	Prev       int // index a retreat would land on
	Next       int // index an advance would land on
	Caption    string
}

// NewCarouselView snapshots ctrl for rendering.
func NewCarouselView(section content.FeatureSection, ctrl *Carousel) CarouselView {
	cur := ctrl.Cursor()
	return CarouselView{
		Items:      ctrl.Items(),
		Active:     ctrl.Active(),
		Index:      cur.Index(),
		Indicators: ctrl.Indicators(),
		Prev:       cur.Prev().Index(),
		Next:       cur.Next().Index(),
		Caption:    section.ScreenshotCaption,
	}
}

// PageState is the per-request view state: the carousel and the mobile menu toggle.
type PageState struct {
	Carousel *Carousel
	MenuOpen bool
}

// RenderString renders n to a string.
func RenderString(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
