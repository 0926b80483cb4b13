// Package library builds the catalog: it turns raw filesystem entries under
// an ordered list of library roots into series and chapter records, resolves
// cover art through the container abstraction, and merges sidecar metadata.
//
// A Service is stateless between queries. Every call re-reads the
// filesystem, so staleness is bounded only by re-invocation; there is no
// cache to invalidate and no shared mutable state between queries.
package library

import (
	"path/filepath"
	"strings"

	"github.com/hiraku/hondana/internal/util"
)

// Service answers catalog queries over an ordered list of library roots.
// Earlier roots win: the first root that contains a series or chapter claims
// it and later roots are not consulted.
type Service struct {
	roots []string

	// Injected collaborators, overridable in tests. Compare is a natural
	// case-insensitive three-way comparator; ParseNumber extracts a numeric
	// chapter value from a name; IsImage decides what counts as a page.
	Compare     func(a, b string) int
	ParseNumber func(seriesTitle, chapterName string) float64
	IsImage     func(name string) bool
}

// New creates a Service with the default collaborators.
func New(roots []string) *Service {
	return &Service{
		roots:       roots,
		Compare:     util.NaturalCompare,
		ParseNumber: util.ParseChapterNumber,
		IsImage:     IsImageFile,
	}
}

// Roots returns the ordered library roots the service reads from.
func (s *Service) Roots() []string { return s.roots }

// IsImageFile checks if a filename has a common image file extension.
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif" || ext == ".webp"
}

// stem returns a file name without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
