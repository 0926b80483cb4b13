package container

import (
	"archive/zip"
	"fmt"
	"io"
)

// Zip is a chapter backed by a .zip or .cbz archive. The archive is opened
// fresh on every call and closed on every exit path, so no handle outlives
// the operation that needed it.
type Zip struct {
	path string
}

func (z *Zip) Kind() Kind   { return KindZip }
func (z *Zip) Path() string { return z.path }

func (z *Zip) List() ([]Entry, error) {
	r, err := zip.OpenReader(z.path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", z.path, err)
	}
	defer r.Close()

	entries := make([]Entry, 0, len(r.File))
	for _, f := range r.File {
		entries = append(entries, Entry{Name: f.Name, IsDir: f.FileInfo().IsDir()})
	}
	return entries, nil
}

func (z *Zip) Exists(name string) (bool, error) {
	r, err := zip.OpenReader(z.path)
	if err != nil {
		return false, fmt.Errorf("open zip %s: %w", z.path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (z *Zip) ReadEntry(name string) ([]byte, error) {
	r, err := zip.OpenReader(z.path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", z.path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s in %s: %w", name, z.path, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read entry %s in %s: %w", name, z.path, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrEntryNotFound, name, z.path)
}
