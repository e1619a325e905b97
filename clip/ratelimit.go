package clip

import (
	"context"
	"sync"

	"github.com/fwojciec/notionmark"
	"golang.org/x/time/rate"
)

var _ notionmark.DomainLimiter = (*DomainLimiter)(nil)

// DefaultDomainRate is the default number of fetches per second per host.
const DefaultDomainRate = 1.0

// DomainLimiter provides per-host rate limiting using token buckets.
// Fetches to different hosts proceed concurrently while fetches to the
// same host are spaced out.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
