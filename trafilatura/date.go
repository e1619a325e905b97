// Package trafilatura detects publication dates of clipped pages with go-trafilatura.
package trafilatura

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/notionmark"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure DateDetector implements notionmark.DateDetector at compile time.
var _ notionmark.DateDetector = (*DateDetector)(nil)

// DateDetector wraps go-trafilatura's metadata extraction to find the
// date a page was published.
type DateDetector struct{}

// NewDateDetector creates a new DateDetector.
func NewDateDetector() *DateDetector {
	return &DateDetector{}
}

// DetectDate returns the publication date found in rawHTML, or the zero
// time when the page carries none.
func (d *DateDetector) DetectDate(rawHTML string, pageURL string) (time.Time, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return time.Time{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return time.Time{}, fmt.Errorf("detecting date: %w", err)
	}

	return result.Metadata.Date, nil
}
