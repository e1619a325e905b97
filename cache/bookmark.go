package cache

import (
	"context"

	"github.com/fwojciec/notionmark"
)

// Ensure BookmarkService implements notionmark.BookmarkService at compile time.
var _ notionmark.BookmarkService = (*BookmarkService)(nil)

// BookmarkService caches the results of another BookmarkService.
type BookmarkService struct {
	next  notionmark.BookmarkService
	cache notionmark.Cache
	opts  options
}

// NewBookmarkService wraps next with c.
func NewBookmarkService(next notionmark.BookmarkService, c notionmark.Cache, opts ...Option) *BookmarkService {
	return &BookmarkService{next: next, cache: c, opts: newOptions(opts)}
}

// FindBookmarks returns cached bookmarks when fresh, otherwise reads and
// caches them.
func (s *BookmarkService) FindBookmarks(ctx context.Context, databaseID string) ([]*notionmark.Bookmark, error) {
	key := BookmarksKey(databaseID)

	if !s.opts.refresh {
		var bookmarks []*notionmark.Bookmark
		if load(ctx, s.cache, key, &bookmarks) {
			return bookmarks, nil
		}
	}

	bookmarks, err := s.next.FindBookmarks(ctx, databaseID)
	if err != nil {
		return nil, err
	}
	store(ctx, s.cache, key, bookmarks, s.opts.ttl)
	return bookmarks, nil
}
