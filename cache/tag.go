package cache

import (
	"context"

	"github.com/fwojciec/notionmark"
)

// Ensure TagService implements notionmark.TagService at compile time.
var _ notionmark.TagService = (*TagService)(nil)

// TagService caches the results of another TagService.
type TagService struct {
	next  notionmark.TagService
	cache notionmark.Cache
	opts  options
}

// NewTagService wraps next with c.
func NewTagService(next notionmark.TagService, c notionmark.Cache, opts ...Option) *TagService {
	return &TagService{next: next, cache: c, opts: newOptions(opts)}
}

// FindTags returns cached tags when fresh, otherwise reads and caches them.
func (s *TagService) FindTags(ctx context.Context, databaseID string) ([]*notionmark.Tag, error) {
	key := TagsKey(databaseID)

	if !s.opts.refresh {
		var tags []*notionmark.Tag
		if load(ctx, s.cache, key, &tags) {
			return tags, nil
		}
	}

	tags, err := s.next.FindTags(ctx, databaseID)
	if err != nil {
		return nil, err
	}
	store(ctx, s.cache, key, tags, s.opts.ttl)
	return tags, nil
}
