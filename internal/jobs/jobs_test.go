package jobs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hiraku/hondana/internal/jobs"
	"github.com/hiraku/hondana/internal/library"
	"github.com/hiraku/hondana/internal/testutil"
	"github.com/hiraku/hondana/internal/websocket"
)

func TestCoverSweep_MaterializesCovers(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	testutil.CreateTestCBZ(t, dir, "Chapter 1.cbz", []string{"01.png"})

	hub := websocket.NewHub()
	go hub.Run()
	ctx := &fakeJobContext{
		svc:    library.New([]string{root}),
		ws:     hub,
		jobMgr: jobs.NewManager(),
	}

	// Run the sweep synchronously; it is registered for the scheduler but
	// is an ordinary function underneath.
	jobs.CoverSweep(ctx)

	if _, err := os.Stat(filepath.Join(dir, "cover.jpg")); err != nil {
		t.Errorf("Cover sweep did not materialize cover.jpg: %v", err)
	}
}

func TestCoverSweep_EmptyLibrary(t *testing.T) {
	hub := websocket.NewHub()
	go hub.Run()
	ctx := &fakeJobContext{
		svc:    library.New([]string{t.TempDir()}),
		ws:     hub,
		jobMgr: jobs.NewManager(),
	}

	// Must not panic or block on a library with no series.
	jobs.CoverSweep(ctx)
}
