// This file defines the core data structures (models) for the catalog.
// Everything here is a read-only projection of the library on disk; it is
// rebuilt from scratch on every query and never persisted.

package models

import "time"

// Series represents one publication, backed by one directory under a
// library root. Name doubles as the unique key within a listing.
type Series struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Artist      string    `json:"artist,omitempty"`
	Description string    `json:"description,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Status      int       `json:"status"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	ModTime     time.Time `json:"mod_time"`
}

// Chapter represents one installment of a series, backed by a directory of
// images or a single archive file. URL is the path relative to the library
// roots, i.e. "seriesName/entryName".
type Chapter struct {
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	Number     float64   `json:"number"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Page is a single addressable image inside a chapter's container.
type Page struct {
	FileName string `json:"file_name"`
	Index    int    `json:"index"`
}

// ProgressUpdate is broadcast over the websocket hub while background jobs
// (like the cover sweep) run.
type ProgressUpdate struct {
	JobID    string  `json:"job_id"`
	Message  string  `json:"message"`
	Progress float64 `json:"progress"`
	Done     bool    `json:"done"`
}
