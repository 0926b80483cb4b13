// This file contains the catalog builder: series enumeration across roots,
// search and latest filters, sorting, and projection into Series records
// with covers and metadata.

package library

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hiraku/hondana/internal/models"
	"github.com/hiraku/hondana/internal/util"
)

// Sort criteria accepted by ListSeries.
const (
	SortByName     = "name"
	SortByModified = "modified"
)

// latestWindow is the trailing window consulted by ListLatest.
const latestWindow = 7 * 24 * time.Hour

type seriesDirEntry struct {
	name    string
	root    string
	modTime time.Time
}

// seriesDirEntries gathers series directories from all roots, excluding
// hidden entries, deduplicated by name with the first root winning.
func (s *Service) seriesDirEntries() []seriesDirEntry {
	seen := make(map[string]bool)
	var dirs []seriesDirEntry
	for _, root := range s.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			log.Printf("Skipping unreadable library root %s: %v", root, err)
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if !e.IsDir() || strings.HasPrefix(name, ".") || seen[name] {
				continue
			}
			info, err := e.Info()
			if err != nil {
				log.Printf("Skipping series directory %s: %v", name, err)
				continue
			}
			seen[name] = true
			dirs = append(dirs, seriesDirEntry{name: name, root: root, modTime: info.ModTime()})
		}
	}
	return dirs
}

// SeriesNames returns the deduplicated series names across roots, sorted
// case-insensitively. Unlike the listing queries it skips cover and
// metadata enrichment, so it stays cheap for background sweeps.
func (s *Service) SeriesNames() []string {
	dirs := s.seriesDirEntries()
	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// ListSeries returns the series matching a case-insensitive substring query
// (empty query matches everything), sorted by name or modification time.
func (s *Service) ListSeries(query, sortBy string, ascending bool) []*models.Series {
	dirs := s.seriesDirEntries()

	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		filtered := dirs[:0]
		for _, d := range dirs {
			if strings.Contains(strings.ToLower(d.name), q) {
				filtered = append(filtered, d)
			}
		}
		dirs = filtered
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByModified:
			less = dirs[i].modTime.Before(dirs[j].modTime)
		default:
			// Plain case-insensitive lexicographic, deliberately not the
			// natural comparator.
			less = strings.ToLower(dirs[i].name) < strings.ToLower(dirs[j].name)
		}
		if ascending {
			return less
		}
		return !less
	})

	return s.project(dirs)
}

// ListLatest returns the series modified within the trailing seven-day
// window, newest first.
func (s *Service) ListLatest() []*models.Series {
	cutoff := time.Now().Add(-latestWindow)

	var recent []seriesDirEntry
	for _, d := range s.seriesDirEntries() {
		if d.modTime.After(cutoff) {
			recent = append(recent, d)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].modTime.After(recent[j].modTime)
	})
	return s.project(recent)
}

// SeriesDetails returns one series enriched with metadata and cover.
func (s *Service) SeriesDetails(seriesName string) (*models.Series, error) {
	if err := util.ValidateRelPath(seriesName); err != nil {
		return nil, err
	}
	dir := s.seriesDir(seriesName)
	if dir == "" {
		return nil, fmt.Errorf("series not found: %s", seriesName)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	sr := s.buildSeries(seriesDirEntry{name: seriesName, modTime: info.ModTime()})
	return sr, nil
}

// project turns series directories into enriched Series records. Cover
// resolution opens containers for every series shown, which makes it the
// dominant cost of a catalog scan; any per-series failure is logged and
// isolated so it cannot fail the overall query.
func (s *Service) project(dirs []seriesDirEntry) []*models.Series {
	out := make([]*models.Series, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, s.buildSeries(d))
	}
	return out
}

func (s *Service) buildSeries(d seriesDirEntry) *models.Series {
	sr := &models.Series{
		Name:    d.name,
		Title:   d.name,
		ModTime: d.modTime,
	}
	s.MergeMetadata(sr)

	thumb, err := s.EnsureCover(d.name)
	if err != nil {
		log.Printf("Cover resolution failed for series %s: %v", d.name, err)
	} else {
		sr.Thumbnail = thumb
	}
	return sr
}
