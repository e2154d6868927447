package site

import _ "embed"

// CarouselScript is the client script served at urls.CarouselJS.
//
//go:embed assets/carousel.js
var CarouselScript []byte
