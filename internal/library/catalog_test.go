package library_test

import (
	"testing"
	"time"

	"github.com/hiraku/hondana/internal/library"
	"github.com/hiraku/hondana/internal/testutil"
)

func TestListSeries_DedupeAcrossRoots(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	dir1 := testutil.CreateSeriesDir(t, root1, "Foo")
	dir2 := testutil.CreateSeriesDir(t, root2, "Foo")
	testutil.WriteDetailsJSON(t, dir1, map[string]interface{}{"title": "Foo From Root One"})
	testutil.WriteDetailsJSON(t, dir2, map[string]interface{}{"title": "Foo From Root Two"})

	svc := library.New([]string{root1, root2})
	series := svc.ListSeries("", library.SortByName, true)
	if len(series) != 1 {
		t.Fatalf("Expected 1 deduplicated series, got %d", len(series))
	}
	// The first root claims the name, including its metadata.
	if series[0].Title != "Foo From Root One" {
		t.Errorf("Expected the first root's metadata, got title %q", series[0].Title)
	}
}

func TestListSeries_ExcludesHidden(t *testing.T) {
	root := t.TempDir()
	testutil.CreateSeriesDir(t, root, "Visible")
	testutil.CreateSeriesDir(t, root, ".cache")

	svc := library.New([]string{root})
	series := svc.ListSeries("", library.SortByName, true)
	if len(series) != 1 || series[0].Name != "Visible" {
		t.Fatalf("Hidden directory leaked into the listing: %+v", series)
	}
}

func TestListSeries_SearchFilter(t *testing.T) {
	root := t.TempDir()
	testutil.CreateSeriesDir(t, root, "One Piece")
	testutil.CreateSeriesDir(t, root, "Berserk")

	svc := library.New([]string{root})
	series := svc.ListSeries("piece", library.SortByName, true)
	if len(series) != 1 || series[0].Name != "One Piece" {
		t.Fatalf("Search filter failed: %+v", series)
	}
	if got := svc.ListSeries("", library.SortByName, true); len(got) != 2 {
		t.Errorf("Empty query should match everything, got %d", len(got))
	}
}

func TestListSeries_SortOrder(t *testing.T) {
	root := t.TempDir()
	testutil.CreateSeriesDir(t, root, "banana")
	testutil.CreateSeriesDir(t, root, "Apple")
	testutil.CreateSeriesDir(t, root, "cherry")

	svc := library.New([]string{root})

	asc := svc.ListSeries("", library.SortByName, true)
	wantAsc := []string{"Apple", "banana", "cherry"}
	for i, sr := range asc {
		if sr.Name != wantAsc[i] {
			t.Errorf("ascending[%d] = %q; want %q", i, sr.Name, wantAsc[i])
		}
	}

	desc := svc.ListSeries("", library.SortByName, false)
	wantDesc := []string{"cherry", "banana", "Apple"}
	for i, sr := range desc {
		if sr.Name != wantDesc[i] {
			t.Errorf("descending[%d] = %q; want %q", i, sr.Name, wantDesc[i])
		}
	}
}

func TestListSeries_SortByModified(t *testing.T) {
	root := t.TempDir()
	oldDir := testutil.CreateSeriesDir(t, root, "Old")
	newDir := testutil.CreateSeriesDir(t, root, "New")
	testutil.Touch(t, oldDir, time.Now().Add(-48*time.Hour))
	testutil.Touch(t, newDir, time.Now().Add(-1*time.Hour))

	svc := library.New([]string{root})
	series := svc.ListSeries("", library.SortByModified, true)
	if len(series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(series))
	}
	if series[0].Name != "Old" || series[1].Name != "New" {
		t.Errorf("Modified ascending order wrong: [%q, %q]", series[0].Name, series[1].Name)
	}
}

func TestListLatest_SevenDayWindow(t *testing.T) {
	root := t.TempDir()
	recent := testutil.CreateSeriesDir(t, root, "Recent")
	stale := testutil.CreateSeriesDir(t, root, "Stale")
	testutil.Touch(t, recent, time.Now().Add(-24*time.Hour))
	testutil.Touch(t, stale, time.Now().Add(-8*24*time.Hour))

	svc := library.New([]string{root})
	series := svc.ListLatest()
	if len(series) != 1 {
		t.Fatalf("Expected 1 recent series, got %d", len(series))
	}
	if series[0].Name != "Recent" {
		t.Errorf("Expected 'Recent', got %q", series[0].Name)
	}
}

func TestSeriesDetails(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "Foo")
	testutil.WriteDetailsJSON(t, dir, map[string]interface{}{
		"title":  "Foo Deluxe",
		"author": "Someone",
	})

	svc := library.New([]string{root})
	sr, err := svc.SeriesDetails("Foo")
	if err != nil {
		t.Fatalf("SeriesDetails() returned an error: %v", err)
	}
	if sr.Name != "Foo" || sr.Title != "Foo Deluxe" || sr.Author != "Someone" {
		t.Errorf("Unexpected series: %+v", sr)
	}

	if _, err := svc.SeriesDetails("missing"); err == nil {
		t.Error("Expected an error for a missing series")
	}
}

func TestSeriesNames(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	testutil.CreateSeriesDir(t, root1, "beta")
	testutil.CreateSeriesDir(t, root2, "Alpha")
	testutil.CreateSeriesDir(t, root2, "beta")

	svc := library.New([]string{root1, root2})
	names := svc.SeriesNames()
	want := []string{"Alpha", "beta"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d names, got %v", len(want), names)
	}
	for i, n := range names {
		if n != want[i] {
			t.Errorf("names[%d] = %q; want %q", i, n, want[i])
		}
	}
}
