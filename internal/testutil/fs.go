package testutil

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

// tinyPNG is a valid 1x1 PNG, small enough to embed in fixtures that need
// decodable image bytes.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// TinyPNG returns decodable image bytes for fixtures.
func TinyPNG() []byte {
	out := make([]byte, len(tinyPNG))
	copy(out, tinyPNG)
	return out
}

// CreateTestCBZ creates a CBZ file containing the given page names, each
// with placeholder content. Useful for testing container and cover logic.
func CreateTestCBZ(t *testing.T, dir, name string, pages []string) string {
	t.Helper()
	filePath := filepath.Join(dir, name)
	file, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create temp cbz file: %v", err)
	}
	defer file.Close()

	zipWriter := zip.NewWriter(file)
	defer zipWriter.Close()

	for _, page := range pages {
		w, err := zipWriter.Create(page)
		if err != nil {
			t.Fatalf("Failed to create entry '%s' in zip: %v", page, err)
		}
		if _, err := w.Write(tinyPNG); err != nil {
			t.Fatalf("Failed to write entry '%s' in zip: %v", page, err)
		}
	}
	return filePath
}

// CreateTestEPUB creates a minimal epub: mimetype, container.xml, an OPF
// package with the given title and series index, and one xhtml page per
// image. Image hrefs are relative to the OPF directory "OEBPS".
func CreateTestEPUB(t *testing.T, dir, name, title string, seriesIndex string, images []string) string {
	t.Helper()
	filePath := filepath.Join(dir, name)
	file, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create temp epub file: %v", err)
	}
	defer file.Close()

	zw := zip.NewWriter(file)
	defer zw.Close()

	write := func(entryName, content string) {
		w, err := zw.Create(entryName)
		if err != nil {
			t.Fatalf("Failed to create entry '%s' in epub: %v", entryName, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write entry '%s' in epub: %v", entryName, err)
		}
	}

	write("mimetype", "application/epub+zip")
	write("META-INF/container.xml", `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`)

	manifest := ""
	spine := ""
	for i, img := range images {
		page := "page" + strconv.Itoa(i+1) + ".xhtml"
		write("OEBPS/"+page, `<html xmlns="http://www.w3.org/1999/xhtml"><body><img src="`+img+`"/></body></html>`)
		manifest += `<item id="page` + strconv.Itoa(i+1) + `" href="` + page + `" media-type="application/xhtml+xml"/>` + "\n"
		manifest += `<item id="img` + strconv.Itoa(i+1) + `" href="` + img + `" media-type="image/png"/>` + "\n"
		spine += `<itemref idref="page` + strconv.Itoa(i+1) + `"/>` + "\n"

		w, err := zw.Create("OEBPS/" + img)
		if err != nil {
			t.Fatalf("Failed to create image '%s' in epub: %v", img, err)
		}
		if _, err := w.Write(tinyPNG); err != nil {
			t.Fatalf("Failed to write image '%s' in epub: %v", img, err)
		}
	}

	meta := ""
	if seriesIndex != "" {
		meta = `<meta name="calibre:series_index" content="` + seriesIndex + `"/>`
	}
	write("OEBPS/content.opf", `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>`+title+`</dc:title>
    <dc:creator>Test Author</dc:creator>
    `+meta+`
  </metadata>
  <manifest>
`+manifest+`  </manifest>
  <spine>
`+spine+`  </spine>
</package>`)

	return filePath
}

// CreateSeriesDir creates <root>/<series> and returns its path.
func CreateSeriesDir(t *testing.T, root, series string) string {
	t.Helper()
	dir := filepath.Join(root, series)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create series dir %s: %v", dir, err)
	}
	return dir
}

// WriteDetailsJSON writes a details.json into a series directory.
func WriteDetailsJSON(t *testing.T, seriesDir string, details map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(details)
	if err != nil {
		t.Fatalf("Failed to marshal details.json: %v", err)
	}
	if err := os.WriteFile(filepath.Join(seriesDir, "details.json"), data, 0644); err != nil {
		t.Fatalf("Failed to write details.json: %v", err)
	}
}

// Touch sets the modification time of a path, for latest-window tests.
func Touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Failed to set mtime on %s: %v", path, err)
	}
}
