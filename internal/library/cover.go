// This file resolves cover art. Chapter-level covers come from the
// container abstraction; series-level covers prefer an explicit cover.*
// file at the series root and are materialized from the top chapter's
// container when absent.

package library

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hiraku/hondana/internal/container"
)

// CoverEntry picks the representative image entry of a container: the first
// non-directory image entry in natural case-insensitive order, or "" when
// the container holds no images.
//
// Two formats override the generic rule. An epub's spine defines reading
// order, so its cover comes from the first reading-order page. A directory
// chapter honors a file literally named cover.* ahead of the scan.
func (s *Service) CoverEntry(c container.Container) (string, error) {
	if epub, ok := c.(*container.Epub); ok {
		return epub.CoverEntry()
	}

	entries, err := c.List()
	if err != nil {
		return "", fmt.Errorf("list %s container %s: %w", c.Kind(), c.Path(), err)
	}

	if c.Kind() == container.KindDirectory {
		for _, entry := range entries {
			if !entry.IsDir && strings.EqualFold(stem(entry.Name), "cover") && s.IsImage(entry.Name) {
				return entry.Name, nil
			}
		}
	}

	first := ""
	for _, entry := range entries {
		if entry.IsDir || !s.IsImage(entry.Name) {
			continue
		}
		if first == "" || s.Compare(entry.Name, first) < 0 {
			first = entry.Name
		}
	}
	return first, nil
}

// CoverData reads the representative image of a container. The returned
// name is the entry name inside the container, "" when no cover exists.
func (s *Service) CoverData(c container.Container) ([]byte, string, error) {
	entry, err := s.CoverEntry(c)
	if err != nil || entry == "" {
		return nil, "", err
	}
	data, err := c.ReadEntry(entry)
	if err != nil {
		return nil, "", err
	}
	return data, entry, nil
}

// seriesCoverFile returns the path of an explicit <root>/<series>/cover.*
// file, consulting roots in priority order. Returns "" when none exists.
func (s *Service) seriesCoverFile(seriesName string) string {
	for _, root := range s.roots {
		dir := filepath.Join(root, seriesName)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(stem(e.Name()), "cover") && s.IsImage(e.Name()) {
				return filepath.Join(dir, e.Name())
			}
		}
	}
	return ""
}

// EnsureCover resolves a series' cover file. An explicit cover.* sibling
// always wins, even when the top chapter contains an internally earlier
// named image. Otherwise the cover of the top chapter (highest numbered per
// the discovery sort) is copied once into <series>/cover.jpg, so subsequent
// scans hit the fast path.
func (s *Service) EnsureCover(seriesName string) (string, error) {
	if p := s.seriesCoverFile(seriesName); p != "" {
		return p, nil
	}

	chapters, err := s.Chapters(seriesName)
	if err != nil {
		return "", err
	}
	if len(chapters) == 0 {
		return "", nil
	}

	c, err := s.ResolveChapter(chapters[0].URL)
	if err != nil {
		return "", err
	}
	data, entry, err := s.CoverData(c)
	if err != nil {
		return "", fmt.Errorf("read cover from %s: %w", c.Path(), err)
	}
	if entry == "" {
		return "", nil
	}

	dir := s.seriesDir(seriesName)
	if dir == "" {
		return "", fmt.Errorf("series not found: %s", seriesName)
	}
	dst := filepath.Join(dir, "cover.jpg")
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("materialize cover for %s: %w", seriesName, err)
	}
	log.Printf("Materialized cover for series %s from %s", seriesName, entry)
	return dst, nil
}

// seriesDir returns the series directory under the first root containing
// it, or "".
func (s *Service) seriesDir(seriesName string) string {
	for _, root := range s.roots {
		dir := filepath.Join(root, seriesName)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
