package notion

import (
	"context"

	"github.com/fwojciec/notionmark"
	"golang.org/x/sync/errgroup"
)

// Ensure TagService implements notionmark.TagService at compile time.
var _ notionmark.TagService = (*TagService)(nil)

// TagService reads tags from a Notion database whose pages carry a title
// property named "Name".
type TagService struct {
	client *Client
}

// NewTagService creates a new TagService.
func NewTagService(client *Client) *TagService {
	return &TagService{client: client}
}

// FindTags returns every tag in the database, sorted by name.
func (s *TagService) FindTags(ctx context.Context, databaseID string) ([]*notionmark.Tag, error) {
	pages, err := s.client.QueryDatabase(ctx, databaseID, []Sort{{Property: "Name", Direction: Ascending}})
	if err != nil {
		return nil, err
	}

	tags := make([]*notionmark.Tag, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.client.concurrency)
	for i, page := range pages {
		g.Go(func() error {
			v, err := s.client.RetrievePageProperty(ctx, page.ID, propertyTitle)
			if err != nil {
				return err
			}
			tag := &notionmark.Tag{ID: page.ID, Icon: page.Icon.Value()}
			if title, ok := v.(*TitleValue); ok {
				tag.Name = title.Text
			}
			tags[i] = tag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tags, nil
}
