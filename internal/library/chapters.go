// This file contains the chapter discovery pipeline: it enumerates candidate
// entries under a series directory across all roots, builds chapter records,
// normalizes their names, extracts chapter numbers and sorts the result.

package library

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hiraku/hondana/internal/container"
	"github.com/hiraku/hondana/internal/models"
	"github.com/hiraku/hondana/internal/util"
)

// Chapters discovers and orders the chapters of a series. Candidates are
// directories plus supported-extension files; everything else is silently
// excluded. The first root that contains an entry name claims it.
//
// The result is sorted by numeric chapter value descending, tie-broken by
// natural case-insensitive name comparison descending, so the highest
// numbered chapter comes first.
func (s *Service) Chapters(seriesName string) ([]*models.Chapter, error) {
	if err := util.ValidateRelPath(seriesName); err != nil {
		return nil, err
	}
	title := s.displayTitle(seriesName)

	seen := make(map[string]bool)
	found := false
	var chapters []*models.Chapter
	for _, root := range s.roots {
		entries, err := os.ReadDir(filepath.Join(root, seriesName))
		if err != nil {
			continue
		}
		found = true
		for _, e := range entries {
			name := e.Name()
			if strings.HasPrefix(name, ".") || seen[name] {
				continue
			}
			if !container.IsSupportedEntry(name, e.IsDir()) {
				continue
			}
			seen[name] = true
			if ch := s.buildChapter(root, seriesName, title, e); ch != nil {
				chapters = append(chapters, ch)
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("series not found: %s", seriesName)
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		if chapters[i].Number != chapters[j].Number {
			return chapters[i].Number > chapters[j].Number
		}
		return s.Compare(chapters[i].Name, chapters[j].Name) > 0
	})
	return chapters, nil
}

// buildChapter turns one filesystem entry into a chapter record. Per-entry
// failures are logged and skipped so one bad file cannot abort discovery.
func (s *Service) buildChapter(root, seriesName, seriesTitle string, e os.DirEntry) *models.Chapter {
	info, err := e.Info()
	if err != nil {
		log.Printf("Skipping unreadable chapter entry %s/%s: %v", seriesName, e.Name(), err)
		return nil
	}

	displayName := e.Name()
	if !e.IsDir() {
		displayName = stem(displayName)
	}
	ch := &models.Chapter{
		URL:        path.Join(seriesName, e.Name()),
		Name:       displayName,
		Number:     -1,
		UploadedAt: info.ModTime(),
	}

	// Epub chapters carry their own metadata: the book title overrides the
	// filename-derived name and calibre's series index can hint the number.
	if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".epub") {
		s.enrichFromEpub(ch, filepath.Join(root, seriesName, e.Name()))
	}

	if stripped := StripSeriesTitle(ch.Name, seriesTitle); stripped != "" {
		ch.Name = stripped
	}
	if ch.Number < 0 {
		ch.Number = s.ParseNumber(seriesTitle, ch.Name)
	}
	return ch
}

func (s *Service) enrichFromEpub(ch *models.Chapter, fullPath string) {
	c, err := container.Resolve(fullPath)
	if err != nil {
		return
	}
	epub, ok := c.(*container.Epub)
	if !ok {
		return
	}
	book, err := epub.Book()
	if err != nil {
		log.Printf("Ignoring epub metadata for %s: %v", fullPath, err)
		return
	}
	if book.Title != "" {
		ch.Name = book.Title
	}
	if book.SeriesNumber >= 0 {
		ch.Number = book.SeriesNumber
	}
}

// ResolveChapter maps a chapter URL ("seriesName/entryName") to its
// container. Roots are consulted in priority order; the first that contains
// the entry wins. Unlike bulk-scan failures, this error propagates to the
// caller: a single requested chapter has no fallback.
func (s *Service) ResolveChapter(url string) (container.Container, error) {
	if err := util.ValidateRelPath(url); err != nil {
		return nil, err
	}
	for _, root := range s.roots {
		p := filepath.Join(root, filepath.FromSlash(url))
		if _, err := os.Stat(p); err == nil {
			return container.Resolve(p)
		}
	}
	return nil, fmt.Errorf("%w: no such chapter %s", container.ErrUnsupportedFormat, url)
}

// Pages lists the image entries of a chapter in natural order, the order a
// reader pages through them.
func (s *Service) Pages(url string) ([]*models.Page, error) {
	c, err := s.ResolveChapter(url)
	if err != nil {
		return nil, err
	}
	entries, err := c.List()
	if err != nil {
		return nil, err
	}

	var pages []*models.Page
	for _, entry := range entries {
		if entry.IsDir || !s.IsImage(entry.Name) {
			continue
		}
		pages = append(pages, &models.Page{FileName: entry.Name})
	}
	sort.Slice(pages, func(i, j int) bool {
		return s.Compare(pages[i].FileName, pages[j].FileName) < 0
	})
	for i := range pages {
		pages[i].Index = i
	}
	return pages, nil
}
