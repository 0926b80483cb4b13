package container

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Epub is a chapter backed by an .epub book. Entry access is plain zip
// access; on top of that the OPF package document supplies the book's own
// title, author, numbering hint and reading order.
type Epub struct {
	Zip
}

func (e *Epub) Kind() Kind { return KindEpub }

// SpineItem is one reading-order page from the epub's spine, with its href
// already resolved against the OPF directory.
type SpineItem struct {
	Href      string
	MediaType string
}

// BookInfo is the subset of the OPF package document the catalog consumes.
type BookInfo struct {
	Title        string
	Author       string
	SeriesNumber float64 // calibre:series_index, -1 when absent
	Spine        []SpineItem
}

type opfPackage struct {
	XMLName  xml.Name `xml:"package"`
	Metadata struct {
		Title   []string `xml:"title"`
		Creator []string `xml:"creator"`
		Meta    []struct {
			Name    string `xml:"name,attr"`
			Content string `xml:"content,attr"`
		} `xml:"meta"`
	} `xml:"metadata"`
	Manifest struct {
		Item []struct {
			ID        string `xml:"id,attr"`
			Href      string `xml:"href,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"item"`
	} `xml:"manifest"`
	Spine struct {
		Itemref []struct {
			Idref string `xml:"idref,attr"`
		} `xml:"itemref"`
	} `xml:"spine"`
}

// Book parses the OPF package document. The zip is held open only for the
// duration of this call.
func (e *Epub) Book() (*BookInfo, error) {
	r, err := zip.OpenReader(e.path)
	if err != nil {
		return nil, fmt.Errorf("open epub %s: %w", e.path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, ".opf") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open opf in %s: %w", e.path, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read opf in %s: %w", e.path, err)
		}
		return parseOPF(f.Name, data)
	}
	return nil, fmt.Errorf("no opf package document in %s", e.path)
}

func parseOPF(opfPath string, data []byte) (*BookInfo, error) {
	pkg := &opfPackage{}
	if err := xml.Unmarshal(data, pkg); err != nil {
		return nil, fmt.Errorf("parse opf %s: %w", opfPath, err)
	}

	info := &BookInfo{SeriesNumber: -1}
	if len(pkg.Metadata.Title) > 0 {
		info.Title = strings.TrimSpace(pkg.Metadata.Title[0])
	}
	if len(pkg.Metadata.Creator) > 0 {
		info.Author = strings.TrimSpace(pkg.Metadata.Creator[0])
	}
	for _, m := range pkg.Metadata.Meta {
		if m.Name == "calibre:series_index" && m.Content != "" {
			if n, err := strconv.ParseFloat(m.Content, 64); err == nil {
				info.SeriesNumber = n
			}
		}
	}

	// All manifest hrefs are relative to the OPF file's directory.
	base := path.Dir(opfPath)
	if base == "." {
		base = ""
	}
	items := make(map[string]SpineItem, len(pkg.Manifest.Item))
	for _, item := range pkg.Manifest.Item {
		items[item.ID] = SpineItem{
			Href:      path.Join(base, item.Href),
			MediaType: item.MediaType,
		}
	}
	for _, ref := range pkg.Spine.Itemref {
		if item, ok := items[ref.Idref]; ok {
			info.Spine = append(info.Spine, item)
		}
	}
	return info, nil
}

// CoverEntry returns the archive path of the image referenced by the first
// reading-order page. The spine defines order here, not entry names: a
// name-sorted scan over an epub would pick navigation art or whatever
// happens to sort first. Returns "" when the book has no page images.
func (e *Epub) CoverEntry() (string, error) {
	info, err := e.Book()
	if err != nil {
		return "", err
	}
	for _, item := range info.Spine {
		// Fixed-layout books can put images directly in the spine.
		if strings.HasPrefix(item.MediaType, "image/") {
			return item.Href, nil
		}
		data, err := e.ReadEntry(item.Href)
		if err != nil {
			continue
		}
		if src := firstImageRef(data); src != "" {
			return resolveHref(item.Href, src), nil
		}
	}
	return "", nil
}

// firstImageRef extracts the first img/image reference from a page document.
func firstImageRef(page []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return ""
	}
	if src, ok := doc.Find("img").First().Attr("src"); ok {
		return src
	}
	// SVG wrappers reference the bitmap through xlink.
	if src, ok := doc.Find("image").First().Attr("xlink:href"); ok {
		return src
	}
	if src, ok := doc.Find("image").First().Attr("href"); ok {
		return src
	}
	return ""
}

// resolveHref resolves a page-relative reference to an archive path.
func resolveHref(pagePath, href string) string {
	if i := strings.IndexAny(href, "#?"); i >= 0 {
		href = href[:i]
	}
	return path.Join(path.Dir(pagePath), href)
}
