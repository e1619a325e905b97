package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notionmark"
)

// Compile-time interface verification.
var (
	_ notionmark.BookmarkService = (*LoggingBookmarkService)(nil)
	_ notionmark.TagService      = (*LoggingTagService)(nil)
	_ notionmark.ArticleService  = (*LoggingArticleService)(nil)
)

// LoggingBookmarkService wraps a BookmarkService with logging.
type LoggingBookmarkService struct {
	next   notionmark.BookmarkService
	logger *slog.Logger
}

// NewLoggingBookmarkService creates a new LoggingBookmarkService.
func NewLoggingBookmarkService(next notionmark.BookmarkService, logger *slog.Logger) *LoggingBookmarkService {
	return &LoggingBookmarkService{next: next, logger: logger}
}

// FindBookmarks delegates to the wrapped service and logs the operation.
func (s *LoggingBookmarkService) FindBookmarks(ctx context.Context, databaseID string) (bookmarks []*notionmark.Bookmark, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find bookmarks",
			"database", databaseID,
			"count", len(bookmarks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBookmarks(ctx, databaseID)
}

// LoggingTagService wraps a TagService with logging.
type LoggingTagService struct {
	next   notionmark.TagService
	logger *slog.Logger
}

// NewLoggingTagService creates a new LoggingTagService.
func NewLoggingTagService(next notionmark.TagService, logger *slog.Logger) *LoggingTagService {
	return &LoggingTagService{next: next, logger: logger}
}

// FindTags delegates to the wrapped service and logs the operation.
func (s *LoggingTagService) FindTags(ctx context.Context, databaseID string) (tags []*notionmark.Tag, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find tags",
			"database", databaseID,
			"count", len(tags),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTags(ctx, databaseID)
}

// LoggingArticleService wraps an ArticleService with logging.
type LoggingArticleService struct {
	next   notionmark.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next notionmark.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// CreateArticle delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) CreateArticle(ctx context.Context, databaseID string, article *notionmark.Article) (id string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("create article",
			"database", databaseID,
			"url", article.URL,
			"tags", len(article.Tags),
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateArticle(ctx, databaseID, article)
}
