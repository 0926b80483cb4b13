package container

import (
	"fmt"
	"os"
	"path/filepath"
)

// Directory is a chapter backed by a plain directory of images.
type Directory struct {
	path string
}

func (d *Directory) Kind() Kind   { return KindDirectory }
func (d *Directory) Path() string { return d.path }

// List returns the directory's immediate children. It does not recurse;
// nested directories appear as entries with IsDir set.
func (d *Directory) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", d.path, err)
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return entries, nil
}

func (d *Directory) Exists(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(d.path, filepath.Clean(name)))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (d *Directory) ReadEntry(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(d.path, filepath.Clean(name)))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s in %s", ErrEntryNotFound, name, d.path)
	}
	return data, err
}
