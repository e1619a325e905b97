package clip

import (
	"context"
	"time"

	"github.com/fwojciec/notionmark"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches url, retrying after each delay in delays.
// It makes at most len(delays)+1 attempts and returns the last error.
// Invalid-input errors are not retried. logf, if non-nil, is called
// before each retry.
func FetchWithRetry(ctx context.Context, fetcher notionmark.Fetcher, url string, delays []time.Duration, logf LogFunc) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || notionmark.ErrorCode(err) == notionmark.EINVALID {
			break
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logf != nil {
			logf("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
