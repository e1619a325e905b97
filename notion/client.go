// Package notion implements notionmark services on top of the Notion REST API.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/notionmark"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Notion public API root.
	DefaultBaseURL = "https://api.notion.com/v1"

	// APIVersion is sent as the Notion-Version header.
	APIVersion = "2022-06-28"

	// DefaultRateLimit is Notion's documented average request rate per integration.
	DefaultRateLimit = rate.Limit(3)

	// DefaultConcurrency bounds parallel property reads.
	DefaultConcurrency = 3

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 30 * time.Second

	pageSize = 100
)

// Client is a minimal Notion API client. It is safe for concurrent use.
// Requests are throttled by a shared token bucket.
type Client struct {
	token       string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	concurrency int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the request rate and burst.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(r, burst)
	}
}

// WithConcurrency sets how many property reads run in parallel.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewClient returns a Client authenticated with the integration token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:       token,
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		limiter:     rate.NewLimiter(DefaultRateLimit, 1),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DatabaseQuery is the body of a database query request.
type DatabaseQuery struct {
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// Sort orders database query results by a property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// Sort directions.
const (
	Ascending  = "ascending"
	Descending = "descending"
)

type queryResponse struct {
	Results    []*Page `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor"`
}

// QueryDatabase returns every page in the database, following pagination
// cursors until the result set is exhausted.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, sorts []Sort) ([]*Page, error) {
	q := DatabaseQuery{Sorts: sorts, PageSize: pageSize}

	var pages []*Page
	for {
		var resp queryResponse
		if err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", q, &resp); err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)

		if !resp.HasMore || resp.NextCursor == "" {
			return pages, nil
		}
		q.StartCursor = resp.NextCursor
	}
}

// RetrievePageProperty returns the decoded value of one page property,
// following pagination for list-valued properties.
// Property kinds other than title, url and relation decode to nil.
func (c *Client) RetrievePageProperty(ctx context.Context, pageID, propertyID string) (PropertyValue, error) {
	path := "/pages/" + pageID + "/properties/" + propertyID

	var items []propertyItem
	cursor := ""
	for {
		p := path
		if cursor != "" {
			p += "?start_cursor=" + cursor
		}

		var resp propertyItemResponse
		if err := c.do(ctx, http.MethodGet, p, nil, &resp); err != nil {
			return nil, err
		}

		if resp.Object != "list" {
			return resp.single(), nil
		}

		items = append(items, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			return decodeList(resp.PropertyItem.Type, items), nil
		}
		cursor = resp.NextCursor
	}
}

// CreatePage creates a page and returns it as stored.
func (c *Client) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// apiError is the error object returned by the API.
type apiError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends a request and decodes a JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", APIVersion)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeError maps an API error response to an application error.
func decodeError(resp *http.Response) error {
	var e apiError
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Code == "" {
		return notionmark.Errorf(errorCode(resp.StatusCode, ""), "notion: HTTP %d", resp.StatusCode)
	}
	return notionmark.Errorf(errorCode(resp.StatusCode, e.Code), "%s: %s", e.Code, e.Message)
}

func errorCode(status int, code string) string {
	switch code {
	case "object_not_found":
		return notionmark.ENOTFOUND
	case "unauthorized", "restricted_resource":
		return notionmark.EUNAUTHORIZED
	case "validation_error", "invalid_json", "invalid_request_url", "invalid_request":
		return notionmark.EINVALID
	case "conflict_error":
		return notionmark.ECONFLICT
	}
	switch status {
	case http.StatusNotFound:
		return notionmark.ENOTFOUND
	case http.StatusUnauthorized, http.StatusForbidden:
		return notionmark.EUNAUTHORIZED
	}
	return notionmark.EINTERNAL
}
