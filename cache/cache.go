// Package cache serves Notion reads from a local notionmark.Cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/notionmark"
)

// DefaultTTL is how long a cached read stays fresh.
const DefaultTTL = time.Hour

// Key namespaces.
const (
	bookmarksPrefix = "bookmarks"
	tagsPrefix      = "tags"
)

// Key returns the cache key for a read of databaseID under prefix.
func Key(prefix, databaseID string) string {
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64String(databaseID))
}

// BookmarksKey returns the cache key for the bookmarks of databaseID.
func BookmarksKey(databaseID string) string {
	return Key(bookmarksPrefix, databaseID)
}

// TagsKey returns the cache key for the tags of databaseID.
func TagsKey(databaseID string) string {
	return Key(tagsPrefix, databaseID)
}

// Option configures a caching service.
type Option func(*options)

type options struct {
	ttl     time.Duration
	refresh bool
}

// WithTTL sets how long results are cached.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// WithRefresh skips cached results and overwrites them with fresh reads.
func WithRefresh(refresh bool) Option {
	return func(o *options) {
		o.refresh = refresh
	}
}

func newOptions(opts []Option) options {
	o := options{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// load decodes the cached value under key into v.
// It reports false on a miss or on any cache or decoding failure.
func load(ctx context.Context, c notionmark.Cache, key string, v any) bool {
	data, err := c.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// store encodes v under key. Failures leave the cache unchanged.
func store(ctx context.Context, c notionmark.Cache, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, data, ttl)
}
