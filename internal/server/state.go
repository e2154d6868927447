package server

import (
	"fmt"

	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/site"
)

// carouselState is the JSON view of a carousel after a transition.
type carouselState struct {
	ActiveIndex int           `json:"active_index"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Theme       content.Theme `json:"theme"`
	Icon        content.Icon  `json:"icon"`
	Indicators  []bool        `json:"indicators"`
	HTML        string        `json:"html"`
}

type errorMessage struct {
	Error string `json:"error"`
}

// snapshot derives the outgoing state from ctrl, including the re-rendered panel.
func (s *Server) snapshot(ctrl *site.Carousel) (carouselState, error) {
	view := site.NewCarouselView(s.doc.Features, ctrl)
	html, err := site.RenderString(site.CarouselPanel(view))
	if err != nil {
		return carouselState{}, fmt.Errorf("render carousel panel: %w", err)
	}

	return carouselState{
		ActiveIndex: view.Index,
		Title:       view.Active.Title,
		Description: view.Active.Description,
		Theme:       view.Active.Theme,
		Icon:        view.Active.Icon,
		Indicators:  view.Indicators,
		HTML:        html,
	}, nil
}
