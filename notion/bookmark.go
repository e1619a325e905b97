package notion

import (
	"context"
	"slices"

	"github.com/fwojciec/notionmark"
	"golang.org/x/sync/errgroup"
)

// Ensure BookmarkService implements notionmark.BookmarkService at compile time.
var _ notionmark.BookmarkService = (*BookmarkService)(nil)

// BookmarkService reads bookmarks from a Notion database.
// Every page property is read; title, url and relation properties map to
// the bookmark name, URL and tags.
type BookmarkService struct {
	client *Client
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(client *Client) *BookmarkService {
	return &BookmarkService{client: client}
}

// FindBookmarks returns every bookmark in the database, sorted by name.
func (s *BookmarkService) FindBookmarks(ctx context.Context, databaseID string) ([]*notionmark.Bookmark, error) {
	pages, err := s.client.QueryDatabase(ctx, databaseID, []Sort{{Property: "Name", Direction: Ascending}})
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return []*notionmark.Bookmark{}, nil
	}

	// All pages in a database share its schema.
	propertyIDs := propertyIDs(pages[0])

	values := make([][]PropertyValue, len(pages))
	for i := range values {
		values[i] = make([]PropertyValue, len(propertyIDs))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.client.concurrency)
	for i, page := range pages {
		for j, propertyID := range propertyIDs {
			g.Go(func() error {
				v, err := s.client.RetrievePageProperty(ctx, page.ID, propertyID)
				if err != nil {
					return err
				}
				values[i][j] = v
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bookmarks := make([]*notionmark.Bookmark, len(pages))
	for i, page := range pages {
		bookmarks[i] = newBookmark(page, values[i])
	}
	return bookmarks, nil
}

// propertyIDs returns the property IDs of page in a stable order.
func propertyIDs(page *Page) []string {
	ids := make([]string, 0, len(page.Properties))
	for _, p := range page.Properties {
		ids = append(ids, p.ID)
	}
	slices.Sort(ids)
	return ids
}

func newBookmark(page *Page, values []PropertyValue) *notionmark.Bookmark {
	b := &notionmark.Bookmark{
		ID:      page.ID,
		Favicon: page.Icon.Value(),
		Cover:   page.Cover.Value(),
		Tags:    []string{},
	}
	for _, v := range values {
		switch v := v.(type) {
		case *TitleValue:
			b.Name = v.Text
		case *URLValue:
			b.URL = v.URL
		case *RelationValue:
			b.Tags = append(b.Tags, v.IDs...)
		}
	}
	return b
}
