// Package clip saves web pages to the article database: it fetches each
// page, extracts its metadata and creates an article from it.
package clip

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/notionmark"
	"github.com/fwojciec/notionmark/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages clipped in parallel by ClipAll.
const DefaultConcurrency = 4

// Clipper turns URLs into articles.
type Clipper struct {
	Fetcher     notionmark.Fetcher
	Extractor   notionmark.MetaExtractor
	Dates       notionmark.DateDetector // optional
	Articles    notionmark.ArticleService
	RateLimiter notionmark.DomainLimiter // optional
	Concurrency int
	RetryDelays []time.Duration
	Log         LogFunc // optional

	// DryRun stops after extraction; no article is created.
	DryRun bool
}

// Request describes one page to clip.
type Request struct {
	URL  string
	Tags []string // tag page IDs

	// Published overrides date detection when non-zero.
	Published time.Time
}

// Page is the metadata gathered for a URL before it is stored.
type Page struct {
	URL       string               `json:"url"`
	Meta      *notionmark.PageMeta `json:"meta"`
	Published time.Time            `json:"published,omitzero"`
}

// Result is the outcome of clipping one URL.
type Result struct {
	URL    string
	Page   *Page
	PageID string // empty on dry runs

	// Skipped is set for URLs already present earlier in the batch.
	Skipped bool
	Err     error
}

// Preview fetches rawURL and returns its metadata and detected publication date.
func (c *Clipper) Preview(ctx context.Context, rawURL string) (*Page, error) {
	return c.page(ctx, rawURL, true)
}

// Clip fetches the page, extracts its metadata and stores it as an article in
// the database. A zero Published date is filled from the page when possible.
func (c *Clipper) Clip(ctx context.Context, databaseID string, req Request) (*Result, error) {
	page, err := c.page(ctx, req.URL, req.Published.IsZero())
	if err != nil {
		return nil, err
	}
	if !req.Published.IsZero() {
		page.Published = req.Published
	}

	result := &Result{URL: req.URL, Page: page}
	if c.DryRun {
		return result, nil
	}

	article := &notionmark.Article{
		Title:     page.Meta.Title,
		URL:       req.URL,
		OGPImage:  page.Meta.OGPImage,
		Icon:      page.Meta.Icon,
		Tags:      req.Tags,
		Published: page.Published,
	}
	id, err := c.Articles.CreateArticle(ctx, databaseID, article)
	if err != nil {
		return nil, err
	}
	result.PageID = id
	return result, nil
}

func (c *Clipper) page(ctx context.Context, rawURL string, detectDate bool) (*Page, error) {
	origin, err := notionmark.Origin(rawURL)
	if err != nil {
		return nil, err
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, host(origin)); err != nil {
			return nil, err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, c.Fetcher, rawURL, delays, c.Log)
	if err != nil {
		return nil, err
	}

	meta, err := c.Extractor.Extract(html, origin)
	if err != nil {
		return nil, err
	}

	page := &Page{URL: rawURL, Meta: meta}
	if detectDate && c.Dates != nil {
		if published, err := c.Dates.DetectDate(html, rawURL); err == nil {
			page.Published = published
		} else if c.Log != nil {
			c.Log("no publication date for %s: %v", rawURL, err)
		}
	}
	return page, nil
}

// host returns the host part of an origin.
func host(origin string) string {
	if u, err := url.Parse(origin); err == nil {
		return u.Host
	}
	return strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://")
}

// ProgressEvent reports progress during ClipAll.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting clip progress.
// It is never called concurrently.
type ProgressFunc func(event ProgressEvent)

// ClipAll clips every request with bounded concurrency. Repeated URLs
// (ignoring fragments) are skipped. Results are returned in request order;
// a failure of one URL does not stop the others.
func (c *Clipper) ClipAll(ctx context.Context, databaseID string, reqs []Request, progress ProgressFunc) []*Result {
	results := make([]*Result, len(reqs))
	total := len(reqs)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	seen := bloom.NewURLSet(uint(len(reqs)))
	skipped := make([]bool, len(reqs))
	for i, req := range reqs {
		skipped[i] = seen.Seen(req.URL)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type indexed struct {
		position int
		result   *Result
	}
	resultCh := make(chan indexed, len(reqs))

	// Errors are carried in results, so the group never cancels.
	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for i, req := range reqs {
			if skipped[i] {
				resultCh <- indexed{i, &Result{URL: req.URL, Skipped: true}}
				continue
			}
			g.Go(func() error {
				result, err := c.Clip(ctx, databaseID, req)
				if err != nil {
					result = &Result{URL: req.URL, Err: err}
				}
				resultCh <- indexed{i, result}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for r := range resultCh {
		results[r.position] = r.result
		completed++
		if progress == nil {
			continue
		}

		event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: r.result.URL}
		switch {
		case r.result.Skipped:
			event.Type = ProgressSkipped
		case r.result.Err != nil:
			event.Type = ProgressFailed
			event.Error = r.result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results
}
