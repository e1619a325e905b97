package notionmark

import "time"

// PageMeta holds the metadata extracted from a fetched HTML page.
type PageMeta struct {
	// Title is the text of every <title> element joined in document order.
	// It is empty, never absent, when the page declares no title.
	Title string `json:"title"`

	// OGPImage is the og:image content as declared by the page.
	// Empty means the page has no preview image.
	OGPImage string `json:"ogpImage,omitempty"`

	// Icon is the best apple-touch-icon or favicon URL.
	// Empty means the page declares no usable icon.
	Icon string `json:"icon,omitempty"`
}

// MetaExtractor derives page metadata from raw HTML.
type MetaExtractor interface {
	// Extract parses html and returns its metadata.
	// Root-relative icon paths are prefixed with origin (scheme://host).
	// Structurally unexpected HTML degrades to empty fields, not an error.
	Extract(html string, origin string) (*PageMeta, error)
}

// DateDetector finds the publication date of an HTML page.
type DateDetector interface {
	// DetectDate returns the zero time when no date can be found.
	DetectDate(html string, pageURL string) (time.Time, error)
}
