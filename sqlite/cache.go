package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/notionmark"
)

// Compile-time interface verification.
var _ notionmark.Cache = (*CacheService)(nil)

// CacheService implements notionmark.Cache using SQLite.
// Expired entries are removed lazily when read.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// Get returns the value stored under key.
func (s *CacheService) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT value, expires_at FROM cache WHERE key = ?
	`, key).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notionmark.Errorf(notionmark.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	expires, err := parseTime(expiresAt, "expires_at")
	if err != nil {
		return nil, err
	}
	if !expires.IsZero() && !s.db.Now().Before(expires) {
		if err := s.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("failed to evict expired entry: %w", err)
		}
		return nil, notionmark.Errorf(notionmark.ENOTFOUND, "cache entry expired")
	}

	return value, nil
}

// Set stores value under key with the given time to live.
func (s *CacheService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return notionmark.Errorf(notionmark.EINVALID, "cache key required")
	}
	if value == nil {
		value = []byte{}
	}

	var expires time.Time
	if ttl > 0 {
		expires = s.db.Now().Add(ttl)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, key, value, formatTime(expires))
	return err
}

// Delete removes the entry for key.
func (s *CacheService) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache WHERE key = ?`, key)
	return err
}

// Clear removes every entry.
func (s *CacheService) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache`)
	return err
}
