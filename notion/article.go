package notion

import (
	"context"

	"github.com/fwojciec/notionmark"
)

// Ensure ArticleService implements notionmark.ArticleService at compile time.
var _ notionmark.ArticleService = (*ArticleService)(nil)

// Article database property names.
const (
	PropertyTitle     = "Title"
	PropertyURL       = "URL"
	PropertyTag       = "Tag"
	PropertyPublished = "Published"
)

// ArticleService stores clipped articles as pages in a Notion database.
type ArticleService struct {
	client *Client
}

// NewArticleService creates a new ArticleService.
func NewArticleService(client *Client) *ArticleService {
	return &ArticleService{client: client}
}

// CreateArticle creates a page for the article and returns its ID.
func (s *ArticleService) CreateArticle(ctx context.Context, databaseID string, article *notionmark.Article) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	page, err := s.client.CreatePage(ctx, NewArticlePageRequest(databaseID, article))
	if err != nil {
		return "", err
	}
	return page.ID, nil
}

// NewArticlePageRequest builds the page creation request for article.
// Optional properties are set only when the article carries them.
func NewArticlePageRequest(databaseID string, article *notionmark.Article) *CreatePageRequest {
	url := article.URL
	req := &CreatePageRequest{
		Parent: Parent{DatabaseID: databaseID},
		Properties: map[string]PropertyInput{
			PropertyTitle: {Title: []RichText{{Text: &TextContent{Content: article.Title}}}},
			PropertyURL:   {URL: &url},
		},
	}

	if len(article.Tags) > 0 {
		relations := make([]Relation, len(article.Tags))
		for i, tag := range article.Tags {
			relations[i] = Relation{ID: tag}
		}
		req.Properties[PropertyTag] = PropertyInput{Relation: relations}
	}

	if !article.Published.IsZero() {
		req.Properties[PropertyPublished] = PropertyInput{
			Date: &Date{Start: notionmark.FormatDate(article.Published)},
		}
	}

	if article.Icon != "" {
		req.Icon = ExternalIcon(article.Icon)
	}
	if article.OGPImage != "" {
		req.Cover = ExternalCover(article.OGPImage)
	}

	return req
}
