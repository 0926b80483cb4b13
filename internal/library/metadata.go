// This file handles the optional details.json sidecar a series directory
// can carry. Parsing failures never fail a query; the series simply keeps
// its directory-derived fields.

package library

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hiraku/hondana/internal/models"
)

// seriesMetadata mirrors the consumed fields of details.json. Pointers
// distinguish "absent" from "empty" so that only fields actually present in
// the file overwrite the series.
type seriesMetadata struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Artist      *string  `json:"artist"`
	Description *string  `json:"description"`
	Genre       []string `json:"genre"`
	Status      *int     `json:"status"`
}

// MergeMetadata applies the first details.json found across the roots onto
// the series. Absent or null fields keep their current values.
func (s *Service) MergeMetadata(sr *models.Series) {
	for _, root := range s.roots {
		data, err := os.ReadFile(filepath.Join(root, sr.Name, "details.json"))
		if err != nil {
			continue
		}

		var meta seriesMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			log.Printf("Malformed details.json for series %s: %v", sr.Name, err)
			return
		}

		if meta.Title != nil {
			sr.Title = *meta.Title
		}
		if meta.Author != nil {
			sr.Author = *meta.Author
		}
		if meta.Artist != nil {
			sr.Artist = *meta.Artist
		}
		if meta.Description != nil {
			sr.Description = *meta.Description
		}
		if len(meta.Genre) > 0 {
			sr.Genre = strings.Join(meta.Genre, ", ")
		}
		if meta.Status != nil {
			sr.Status = *meta.Status
		}
		return
	}
}

// displayTitle resolves the title used for chapter-name normalization: the
// metadata title when a details.json provides one, else the directory name.
func (s *Service) displayTitle(seriesName string) string {
	sr := &models.Series{Name: seriesName, Title: seriesName}
	s.MergeMetadata(sr)
	return sr.Title
}
