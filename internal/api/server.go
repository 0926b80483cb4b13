// This file defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hiraku/hondana/internal/core"
	"github.com/hiraku/hondana/internal/library"
)

// Server holds the dependencies for our API.
type Server struct {
	app     *core.App
	library *library.Service
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{
		app:     app,
		library: app.Library(),
	}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/series", s.handleListSeries)
		r.Get("/series/latest", s.handleListLatest)
		r.Get("/series/{series}", s.handleSeriesDetails)
		r.Get("/series/{series}/cover", s.handleSeriesCover)
		r.Get("/series/{series}/chapters", s.handleListChapters)
		r.Get("/series/{series}/chapters/{chapter}/format", s.handleChapterFormat)
		r.Get("/series/{series}/chapters/{chapter}/pages", s.handleListPages)
		r.Get("/series/{series}/chapters/{chapter}/pages/{pageNumber}", s.handleGetPage)

		// Background job triggers
		r.Get("/jobs/status", s.handleGetJobsStatus)
		r.Post("/jobs/run", s.handleRunJob)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// WebSocket route for job progress and library-change events.
	r.Get("/ws/progress", func(w http.ResponseWriter, r *http.Request) {
		s.app.WsHub().ServeWs(w, r)
	})

	return r
}
