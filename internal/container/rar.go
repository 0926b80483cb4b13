package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mholt/archives"
)

// Rar is a chapter backed by a .rar or .cbr archive. Reading goes through
// the archives walker, which streams entries without unpacking the file;
// a sentinel error short-circuits the walk once the wanted entry is found.
type Rar struct {
	path string
}

func (r *Rar) Kind() Kind   { return KindRar }
func (r *Rar) Path() string { return r.path }

var errStopWalk = errors.New("stop rar walk")

func (r *Rar) walk(fn func(archives.FileInfo) error) error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open rar %s: %w", r.path, err)
	}
	defer f.Close()

	err = archives.Rar{}.Extract(context.Background(), f, func(_ context.Context, info archives.FileInfo) error {
		return fn(info)
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return fmt.Errorf("walk rar %s: %w", r.path, err)
	}
	return nil
}

func (r *Rar) List() ([]Entry, error) {
	var entries []Entry
	err := r.walk(func(info archives.FileInfo) error {
		entries = append(entries, Entry{Name: info.NameInArchive, IsDir: info.IsDir()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Rar) Exists(name string) (bool, error) {
	found := false
	err := r.walk(func(info archives.FileInfo) error {
		if info.NameInArchive == name {
			found = true
			return errStopWalk
		}
		return nil
	})
	return found, err
}

func (r *Rar) ReadEntry(name string) ([]byte, error) {
	var data []byte
	found := false
	err := r.walk(func(info archives.FileInfo) error {
		if info.NameInArchive != name || info.IsDir() {
			return nil
		}
		rc, err := info.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err = io.ReadAll(rc)
		if err != nil {
			return err
		}
		found = true
		return errStopWalk
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s in %s", ErrEntryNotFound, name, r.path)
	}
	return data, nil
}
