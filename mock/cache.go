package mock

import (
	"context"
	"time"

	"github.com/fwojciec/notionmark"
)

var _ notionmark.Cache = (*Cache)(nil)

// Cache is a mock implementation of notionmark.Cache.
type Cache struct {
	GetFn    func(ctx context.Context, key string) ([]byte, error)
	SetFn    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFn func(ctx context.Context, key string) error
	ClearFn  func(ctx context.Context) error
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.GetFn(ctx, key)
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.SetFn(ctx, key, value, ttl)
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.DeleteFn(ctx, key)
}

func (c *Cache) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}
