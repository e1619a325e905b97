package mock

import (
	"time"

	"github.com/fwojciec/notionmark"
)

// Compile-time interface verification.
var (
	_ notionmark.MetaExtractor = (*MetaExtractor)(nil)
	_ notionmark.DateDetector  = (*DateDetector)(nil)
)

// MetaExtractor is a mock implementation of notionmark.MetaExtractor.
type MetaExtractor struct {
	ExtractFn func(html, origin string) (*notionmark.PageMeta, error)
}

func (e *MetaExtractor) Extract(html, origin string) (*notionmark.PageMeta, error) {
	return e.ExtractFn(html, origin)
}

// DateDetector is a mock implementation of notionmark.DateDetector.
type DateDetector struct {
	DetectDateFn func(html, pageURL string) (time.Time, error)
}

func (d *DateDetector) DetectDate(html, pageURL string) (time.Time, error) {
	return d.DetectDateFn(html, pageURL)
}
