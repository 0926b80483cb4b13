package library_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hiraku/hondana/internal/container"
	"github.com/hiraku/hondana/internal/library"
	"github.com/hiraku/hondana/internal/testutil"
)

func TestChapters_DescendingOrder(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	testutil.CreateTestCBZ(t, dir, "Chapter 1.cbz", []string{"01.png"})
	testutil.CreateTestCBZ(t, dir, "Chapter 2.cbz", []string{"01.png"})
	testutil.CreateTestCBZ(t, dir, "Chapter 10.cbz", []string{"01.png"})

	svc := library.New([]string{root})
	chapters, err := svc.Chapters("My Series")
	if err != nil {
		t.Fatalf("Chapters() returned an error: %v", err)
	}
	if len(chapters) != 3 {
		t.Fatalf("Expected 3 chapters, got %d", len(chapters))
	}

	wantNames := []string{"Chapter 10", "Chapter 2", "Chapter 1"}
	wantNumbers := []float64{10, 2, 1}
	for i, ch := range chapters {
		if ch.Name != wantNames[i] {
			t.Errorf("chapters[%d].Name = %q; want %q", i, ch.Name, wantNames[i])
		}
		if ch.Number != wantNumbers[i] {
			t.Errorf("chapters[%d].Number = %g; want %g", i, ch.Number, wantNumbers[i])
		}
	}
}

func TestChapters_NaturalTieBreak(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	testutil.CreateTestCBZ(t, dir, "Chapter 5a.cbz", []string{"01.png"})
	testutil.CreateTestCBZ(t, dir, "Chapter 5b.cbz", []string{"01.png"})

	svc := library.New([]string{root})
	chapters, err := svc.Chapters("My Series")
	if err != nil {
		t.Fatalf("Chapters() returned an error: %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("Expected 2 chapters, got %d", len(chapters))
	}
	// Both parse to 5; the descending natural tie-break puts 5b first.
	if chapters[0].Name != "Chapter 5b" || chapters[1].Name != "Chapter 5a" {
		t.Errorf("Tie-break order wrong: got [%q, %q]", chapters[0].Name, chapters[1].Name)
	}
}

func TestChapters_StripsSeriesTitle(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	testutil.CreateTestCBZ(t, dir, "My Series - Chapter 12.cbz", []string{"01.png"})

	svc := library.New([]string{root})
	chapters, err := svc.Chapters("My Series")
	if err != nil {
		t.Fatalf("Chapters() returned an error: %v", err)
	}
	if chapters[0].Name != "Chapter 12" {
		t.Errorf("Expected stripped name 'Chapter 12', got %q", chapters[0].Name)
	}
	if chapters[0].Number != 12 {
		t.Errorf("Expected number 12, got %g", chapters[0].Number)
	}
	if chapters[0].URL != "My Series/My Series - Chapter 12.cbz" {
		t.Errorf("URL should keep the raw entry name, got %q", chapters[0].URL)
	}
}

func TestChapters_SkipsHiddenAndUnsupported(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	testutil.CreateTestCBZ(t, dir, "Chapter 1.cbz", []string{"01.png"})
	testutil.CreateTestCBZ(t, dir, ".hidden.cbz", []string{"01.png"})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	testutil.WriteDetailsJSON(t, dir, map[string]interface{}{"title": "My Series"})

	svc := library.New([]string{root})
	chapters, err := svc.Chapters("My Series")
	if err != nil {
		t.Fatalf("Chapters() returned an error: %v", err)
	}
	if len(chapters) != 1 {
		t.Fatalf("Expected 1 chapter, got %d", len(chapters))
	}
}

func TestChapters_DirectoryChapter(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	chDir := filepath.Join(dir, "Chapter 3")
	if err := os.MkdirAll(chDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(chDir, "01.png"), testutil.TinyPNG(), 0644); err != nil {
		t.Fatal(err)
	}

	svc := library.New([]string{root})
	chapters, err := svc.Chapters("My Series")
	if err != nil {
		t.Fatalf("Chapters() returned an error: %v", err)
	}
	if len(chapters) != 1 {
		t.Fatalf("Expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].Name != "Chapter 3" || chapters[0].Number != 3 {
		t.Errorf("Directory chapter = %q (%g); want 'Chapter 3' (3)", chapters[0].Name, chapters[0].Number)
	}
}

func TestChapters_EpubMetadataEnrichment(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	testutil.CreateTestEPUB(t, dir, "book.epub", "Cool Book", "3", []string{"img1.png"})

	svc := library.New([]string{root})
	chapters, err := svc.Chapters("My Series")
	if err != nil {
		t.Fatalf("Chapters() returned an error: %v", err)
	}
	if len(chapters) != 1 {
		t.Fatalf("Expected 1 chapter, got %d", len(chapters))
	}
	// The OPF title overrides the filename and the calibre series index
	// provides the number.
	if chapters[0].Name != "Cool Book" {
		t.Errorf("Expected name 'Cool Book', got %q", chapters[0].Name)
	}
	if chapters[0].Number != 3 {
		t.Errorf("Expected number 3, got %g", chapters[0].Number)
	}
}

func TestChapters_FirstRootWins(t *testing.T) {
	root1 := t.TempDir()
	root2 := t.TempDir()
	dir1 := testutil.CreateSeriesDir(t, root1, "Foo")
	dir2 := testutil.CreateSeriesDir(t, root2, "Foo")
	testutil.CreateTestCBZ(t, dir1, "Chapter 1.cbz", []string{"a.png"})
	testutil.CreateTestCBZ(t, dir2, "Chapter 1.cbz", []string{"b.png", "c.png"})
	testutil.CreateTestCBZ(t, dir2, "Chapter 2.cbz", []string{"d.png"})

	svc := library.New([]string{root1, root2})
	chapters, err := svc.Chapters("Foo")
	if err != nil {
		t.Fatalf("Chapters() returned an error: %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("Expected 2 chapters across roots, got %d", len(chapters))
	}

	// Chapter 1 must resolve to the first root's copy.
	pages, err := svc.Pages("Foo/Chapter 1.cbz")
	if err != nil {
		t.Fatalf("Pages() returned an error: %v", err)
	}
	if len(pages) != 1 {
		t.Errorf("Expected 1 page from the first root's copy, got %d", len(pages))
	}
}

func TestChapters_SeriesNotFound(t *testing.T) {
	svc := library.New([]string{t.TempDir()})
	if _, err := svc.Chapters("nope"); err == nil {
		t.Error("Expected an error for a missing series")
	}
	if _, err := svc.Chapters("../escape"); err == nil {
		t.Error("Expected an error for a traversal path")
	}
}

func TestPages_NaturalOrder(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	testutil.CreateTestCBZ(t, dir, "Chapter 1.cbz",
		[]string{"page10.png", "page2.png", "page1.png", "readme.txt"})

	svc := library.New([]string{root})
	pages, err := svc.Pages("My Series/Chapter 1.cbz")
	if err != nil {
		t.Fatalf("Pages() returned an error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("Expected 3 image pages, got %d", len(pages))
	}
	want := []string{"page1.png", "page2.png", "page10.png"}
	for i, p := range pages {
		if p.FileName != want[i] {
			t.Errorf("pages[%d] = %q; want %q", i, p.FileName, want[i])
		}
		if p.Index != i {
			t.Errorf("pages[%d].Index = %d; want %d", i, p.Index, i)
		}
	}
}

func TestResolveChapter_Errors(t *testing.T) {
	root := t.TempDir()
	dir := testutil.CreateSeriesDir(t, root, "My Series")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := library.New([]string{root})
	if _, err := svc.ResolveChapter("My Series/notes.txt"); !errors.Is(err, container.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for .txt, got %v", err)
	}
	if _, err := svc.ResolveChapter("My Series/missing.cbz"); !errors.Is(err, container.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for a missing chapter, got %v", err)
	}
}
