package api

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hiraku/hondana/internal/container"
	"github.com/hiraku/hondana/internal/jobs"
	"github.com/hiraku/hondana/internal/library"
)

// getListParams extracts the query params for the series listing endpoint.
func getListParams(r *http.Request) (search, sortBy string, ascending bool) {
	search = r.URL.Query().Get("search")
	sortBy = r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = library.SortByName
	}
	ascending = r.URL.Query().Get("dir") != "desc"
	return
}

func (s *Server) handleListSeries(w http.ResponseWriter, r *http.Request) {
	search, sortBy, ascending := getListParams(r)
	series := s.library.ListSeries(search, sortBy, ascending)
	w.Header().Set("X-Total-Count", strconv.Itoa(len(series)))
	RespondWithJSON(w, http.StatusOK, series)
}

func (s *Server) handleListLatest(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, s.library.ListLatest())
}

func (s *Server) handleSeriesDetails(w http.ResponseWriter, r *http.Request) {
	series, err := s.library.SeriesDetails(chi.URLParam(r, "series"))
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Series not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, series)
}

func (s *Server) handleListChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := s.library.Chapters(chi.URLParam(r, "series"))
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Series not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, chapters)
}

// handleChapterFormat resolves a single chapter's container variant. This is
// the one operation whose resolution error reaches the client unchanged in
// meaning: there is no fallback for an unsupported or missing chapter.
func (s *Server) handleChapterFormat(w http.ResponseWriter, r *http.Request) {
	url := path.Join(chi.URLParam(r, "series"), chi.URLParam(r, "chapter"))
	c, err := s.library.ResolveChapter(url)
	if err != nil {
		if errors.Is(err, container.ErrUnsupportedFormat) {
			RespondWithError(w, http.StatusUnsupportedMediaType, err.Error())
		} else {
			RespondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"url":    url,
		"format": c.Kind().String(),
	})
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	url := path.Join(chi.URLParam(r, "series"), chi.URLParam(r, "chapter"))
	pages, err := s.library.Pages(url)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Chapter not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, pages)
}

// handleGetPage finds a specific page within a chapter's container and
// serves it as an image.
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	// Page numbers are 1-based for the user, convert to 0-based index.
	pageNumber, err := strconv.Atoi(chi.URLParam(r, "pageNumber"))
	if err != nil || pageNumber < 1 {
		RespondWithError(w, http.StatusBadRequest, "Invalid page number")
		return
	}

	url := path.Join(chi.URLParam(r, "series"), chi.URLParam(r, "chapter"))
	pages, err := s.library.Pages(url)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Chapter not found")
		return
	}
	if pageNumber > len(pages) {
		RespondWithError(w, http.StatusNotFound, "Page not found in chapter")
		return
	}

	c, err := s.library.ResolveChapter(url)
	if err != nil {
		RespondWithError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	fileName := pages[pageNumber-1].FileName
	data, err := c.ReadEntry(fileName)
	if err != nil {
		log.Printf("Error reading page %d from %s: %v", pageNumber, c.Path(), err)
		RespondWithError(w, http.StatusInternalServerError, "Could not read page from chapter")
		return
	}

	w.Header().Set("Content-Type", contentTypeForImage(fileName))
	w.Write(data)
}

// handleSeriesCover serves a series' resolved cover file, materializing it
// first when needed. ?size=thumb downscales on the fly.
func (s *Server) handleSeriesCover(w http.ResponseWriter, r *http.Request) {
	seriesName := chi.URLParam(r, "series")
	coverPath, err := s.library.EnsureCover(seriesName)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Series not found")
		return
	}
	if coverPath == "" {
		RespondWithError(w, http.StatusNotFound, "Series has no cover")
		return
	}

	data, err := os.ReadFile(coverPath)
	if err != nil {
		log.Printf("Error reading cover %s: %v", coverPath, err)
		RespondWithError(w, http.StatusInternalServerError, "Could not read cover")
		return
	}

	if r.URL.Query().Get("size") == "thumb" {
		thumb, err := library.ThumbnailJPEG(data)
		if err != nil {
			log.Printf("Error generating thumbnail for %s: %v", seriesName, err)
		} else {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write(thumb)
			return
		}
	}

	w.Header().Set("Content-Type", contentTypeForImage(coverPath))
	w.Write(data)
}

func (s *Server) handleGetJobsStatus(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, s.app.JobManager().Status())
}

func (s *Server) handleRunJob(w http.ResponseWriter, r *http.Request) {
	jobName := r.URL.Query().Get("job")
	if jobName == "" {
		jobName = jobs.CoverSweepJob
	}
	if err := s.app.JobManager().RunJob(jobName, s.app); err != nil {
		RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusAccepted, map[string]string{"status": "started", "job": jobName})
}

// contentTypeForImage maps an image file name to its Content-Type header.
func contentTypeForImage(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
