// Package site renders the Findar landing page as HTML.
//
// The page is composed from fixed sections in this order: navigation bar,
// hero, feature carousel, about, contact and footer. Every section is a
// gomponents node built from content.Content; nothing here keeps state
// between requests.
//
// # Carousel
//
// The carousel is rendered from a carousel.Controller owned by the caller.
// Indicator dots and the previous/next buttons are plain links to the page
// with the target feature selected, so navigation works without scripts.
// When the embedded carousel.js is loaded, the same links are intercepted
// and routed over the live websocket, and the server answers with a fresh
// CarouselPanel fragment.
//
// # Styling
//
// Classes are Tailwind utility classes. Theme tokens from the content
// catalog map to gradient classes through Themes; icon names map to SVG
// paths through Icons.
package site
