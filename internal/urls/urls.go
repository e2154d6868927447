package urls

import (
	"fmt"
	"net/url"
	"strconv"
)

// Route paths served by the site.
const (
	Home          = "/"
	FeaturePage   = "/features/{index}"
	APIFeatures   = "/api/features"
	APICarousel   = "/api/carousel"
	CarouselSock  = "/ws/carousel"
	CarouselJS    = "/static/carousel.js"
	Health        = "/healthz"
	FeatureParam  = "feature"
	MenuParam     = "menu"
	MenuOpenValue = "open"
)

// Section anchors, in page order.
const (
	AnchorHero     = "hero"
	AnchorFeatures = "features"
	AnchorAbout    = "about"
	AnchorContact  = "contact"
)

// FeatureLink returns the home page URL with feature i active, scrolled to the carousel.
func FeatureLink(i int) string {
	return fmt.Sprintf("%s?%s=%d#%s", Home, FeatureParam, i, AnchorFeatures)
}

// FeaturePath returns the permalink for feature i.
func FeaturePath(i int) string {
	return "/features/" + strconv.Itoa(i)
}

// MenuLink returns the home page URL that renders the mobile menu open or
// closed, keeping the active feature.
func MenuLink(open bool, feature int) string {
	q := url.Values{}
	if feature > 0 {
		q.Set(FeatureParam, strconv.Itoa(feature))
	}
	if open {
		q.Set(MenuParam, MenuOpenValue)
	}
	if len(q) == 0 {
		return Home
	}
	return Home + "?" + q.Encode()
}
