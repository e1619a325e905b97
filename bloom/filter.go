// Package bloom deduplicates clip requests with a Bloom filter.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultFalsePositiveRate is used by NewURLSet.
const DefaultFalsePositiveRate = 0.001

// URLSet records which URLs have been seen. Membership tests may report
// false positives at the configured rate; they never report false negatives.
// URLSet is not safe for concurrent use.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a set sized for n expected URLs.
func NewURLSet(n uint) *URLSet {
	return NewURLSetWithRate(n, DefaultFalsePositiveRate)
}

// NewURLSetWithRate creates a set sized for n expected URLs with the given
// false positive rate.
func NewURLSetWithRate(n uint, fpRate float64) *URLSet {
	if n == 0 {
		n = 1
	}
	return &URLSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether rawURL was probably added before, then adds it.
func (s *URLSet) Seen(rawURL string) bool {
	return s.f.TestOrAddString(NormalizeURL(rawURL))
}

// Contains reports whether rawURL was probably added before.
func (s *URLSet) Contains(rawURL string) bool {
	return s.f.TestString(NormalizeURL(rawURL))
}

// EstimatedCount returns the approximate number of URLs in the set.
func (s *URLSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}

// NormalizeURL returns the form of rawURL used for membership: fragment
// dropped, scheme and host lowercased, default port removed.
// Unparsable input is returned unchanged.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}
	return u.String()
}
