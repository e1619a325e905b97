// Package goquery implements notionmark.MetaExtractor with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/notionmark"
)

// Ensure MetaExtractor implements notionmark.MetaExtractor at compile time.
var _ notionmark.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor derives the title, preview image and icon of a page.
// It holds no state and is safe for concurrent use.
type MetaExtractor struct{}

// NewMetaExtractor creates a new MetaExtractor.
func NewMetaExtractor() *MetaExtractor {
	return &MetaExtractor{}
}

// Extract parses html and returns its metadata.
func (e *MetaExtractor) Extract(html string, origin string) (*notionmark.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, notionmark.Errorf(notionmark.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &notionmark.PageMeta{
		Title: ExtractTitle(doc),
	}
	// An og:image with an empty content attribute carries no image.
	if image, ok := ExtractOGPImage(doc); ok && image != "" {
		meta.OGPImage = image
	}
	if icon, ok := SelectIcon(doc, origin); ok {
		meta.Icon = icon
	}
	return meta, nil
}

// ExtractTitle returns the text of every <title> element in document order,
// joined without a separator. Titles outside <head> are included.
func ExtractTitle(doc *goquery.Document) string {
	return doc.Find("title").Text()
}

// ExtractOGPImage returns the content of the first <meta property="og:image">
// that has a content attribute. The value is returned verbatim, without URL
// resolution, and may be empty. The bool result is false if no such element exists.
func ExtractOGPImage(doc *goquery.Document) (string, bool) {
	var (
		content string
		found   bool
	)
	doc.Find("meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if property, _ := sel.Attr("property"); property != "og:image" {
			return true
		}
		content, found = sel.Attr("content")
		return !found
	})
	return content, found
}
