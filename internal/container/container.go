// Package container abstracts over the physical storage formats a chapter
// can be backed by: a plain directory of images, a zip/cbz archive, a
// rar/cbr archive, or an epub. Every downstream operation (listing entries,
// reading a page, locating a cover) works identically over all four.
//
// The variant set is closed. Dispatch sites switch on Kind so a missing
// format fails loudly instead of silently skipping a chapter.
package container

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies the storage format backing a container.
type Kind int

const (
	KindDirectory Kind = iota
	KindZip
	KindRar
	KindEpub
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindZip:
		return "zip"
	case KindRar:
		return "rar"
	case KindEpub:
		return "epub"
	}
	return "unknown"
}

// Entry is one addressable item inside a container, typically an image.
type Entry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
}

// Container is the uniform, read-only view over a chapter's storage. The
// backing file is opened per call and released before the call returns;
// implementations never cache open handles, so a catalog scan can open and
// close many containers in sequence without leaking descriptors.
type Container interface {
	Kind() Kind
	Path() string
	// List returns the container's entries in format-native order. Callers
	// that need a specific order must sort the result themselves.
	List() ([]Entry, error)
	Exists(name string) (bool, error)
	ReadEntry(name string) ([]byte, error)
}

var (
	// ErrUnsupportedFormat is returned by Resolve for paths whose extension
	// is outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported chapter format")
	// ErrEntryNotFound is returned when a named entry is absent.
	ErrEntryNotFound = errors.New("entry not found in container")
)

// Resolve assigns exactly one container variant to a path, by directory-ness
// and extension alone. Content is never sniffed.
func Resolve(path string) (Container, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &Directory{path: path}, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".cbz":
		return &Zip{path: path}, nil
	case ".rar", ".cbr":
		return &Rar{path: path}, nil
	case ".epub":
		return &Epub{Zip{path: path}}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// IsSupportedEntry reports whether a filesystem entry can back a chapter.
// Directories always qualify; files qualify by extension only. Anything else
// is silently excluded from chapter discovery.
func IsSupportedEntry(name string, isDir bool) bool {
	if isDir {
		return true
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zip", ".cbz", ".rar", ".cbr", ".epub":
		return true
	}
	return false
}
