package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/muurk/findar/internal/carousel"
	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/logging"
	"github.com/muurk/findar/internal/site"
	"github.com/muurk/findar/internal/urls"
)

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get(urls.Home, s.handleHome)
	r.Get(urls.FeaturePage, s.handleFeaturePage)
	r.Get(urls.CarouselJS, s.handleScript)
	r.Get(urls.CarouselSock, s.handleCarouselSocket)
	r.Get(urls.Health, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.config.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get(urls.APIFeatures, s.handleFeatures)
		r.Get(urls.APICarousel, s.handleCarousel)
	})

	return r
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctrl, err := site.NewCarousel(s.doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	start := ctrl.Cursor().Clamp(queryInt(r, urls.FeatureParam))
	_ = ctrl.SelectIndex(start)

	s.renderPage(w, site.PageState{
		Carousel: ctrl,
		MenuOpen: r.URL.Query().Get(urls.MenuParam) == urls.MenuOpenValue,
	})
}

func (s *Server) handleFeaturePage(w http.ResponseWriter, r *http.Request) {
	ctrl, err := site.NewCarousel(s.doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := ctrl.SelectIndex(index); err != nil {
		http.NotFound(w, r)
		return
	}

	s.renderPage(w, site.PageState{Carousel: ctrl})
}

func (s *Server) renderPage(w http.ResponseWriter, state site.PageState) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := site.Page(s.doc, state).Render(w); err != nil {
		logging.Error("Failed to render page", zap.Error(err))
	}
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(site.CarouselScript)
}

// featureEntry is a catalog record with its position and permalink.
type featureEntry struct {
	content.FeatureRecord
	Index     int    `json:"index"`
	Permalink string `json:"permalink"`
}

type featureList struct {
	Count    int            `json:"count"`
	Features []featureEntry `json:"features"`
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	entries := make([]featureEntry, len(s.doc.Features.Items))
	for i, f := range s.doc.Features.Items {
		entries[i] = featureEntry{FeatureRecord: f, Index: i, Permalink: urls.FeaturePath(i)}
	}
	writeJSON(w, http.StatusOK, featureList{
		Count:    len(entries),
		Features: entries,
	})
}

// handleCarousel applies one transition to a carousel positioned at
// ?feature (clamped) and returns the resulting state.
func (s *Server) handleCarousel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	action, err := carousel.ParseAction(q.Get("action"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ev := carousel.Event{Action: action}
	if action == carousel.ActionSelect {
		to, err := strconv.Atoi(q.Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "select requires an integer \"to\" parameter")
			return
		}
		ev.Index = to
	}

	ctrl, err := site.NewCarousel(s.doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = ctrl.SelectIndex(ctrl.Cursor().Clamp(queryInt(r, urls.FeatureParam)))

	if err := ctrl.Apply(ev); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, carousel.ErrIndexOutOfRange) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}

	state, err := s.snapshot(ctrl)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// queryInt returns the integer value of key, or 0 when absent or malformed.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorMessage{Error: msg})
}
