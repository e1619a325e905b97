package mock

import (
	"context"

	"github.com/fwojciec/notionmark"
)

// Compile-time interface verification.
var (
	_ notionmark.BookmarkService = (*BookmarkService)(nil)
	_ notionmark.TagService      = (*TagService)(nil)
	_ notionmark.ArticleService  = (*ArticleService)(nil)
)

// BookmarkService is a mock implementation of notionmark.BookmarkService.
type BookmarkService struct {
	FindBookmarksFn func(ctx context.Context, databaseID string) ([]*notionmark.Bookmark, error)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, databaseID string) ([]*notionmark.Bookmark, error) {
	return s.FindBookmarksFn(ctx, databaseID)
}

// TagService is a mock implementation of notionmark.TagService.
type TagService struct {
	FindTagsFn func(ctx context.Context, databaseID string) ([]*notionmark.Tag, error)
}

func (s *TagService) FindTags(ctx context.Context, databaseID string) ([]*notionmark.Tag, error) {
	return s.FindTagsFn(ctx, databaseID)
}

// ArticleService is a mock implementation of notionmark.ArticleService.
type ArticleService struct {
	CreateArticleFn func(ctx context.Context, databaseID string, article *notionmark.Article) (string, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, databaseID string, article *notionmark.Article) (string, error) {
	return s.CreateArticleFn(ctx, databaseID, article)
}
