package notionmark

import (
	"context"
	"time"
)

// Article represents a clipped web page to be stored in the article database.
type Article struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	OGPImage  string    `json:"ogpImage,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Tags      []string  `json:"tags"` // tag page IDs
	Published time.Time `json:"published"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if err := ValidateURL(a.URL); err != nil {
		return err
	}
	for _, tag := range a.Tags {
		if _, err := ParseID(tag); err != nil {
			return err
		}
	}
	return nil
}

// ArticleService represents a service for storing articles.
type ArticleService interface {
	// CreateArticle stores the article as a new page in the database
	// and returns the new page ID.
	CreateArticle(ctx context.Context, databaseID string, article *Article) (string, error)
}
