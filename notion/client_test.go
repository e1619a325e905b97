package notion_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/notionmark"
	"github.com/fwojciec/notionmark/notion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *notion.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return notion.NewClient("secret-token",
		notion.WithBaseURL(srv.URL),
		notion.WithRateLimit(rate.Inf, 1),
	)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, v)
}

func TestClient_QueryDatabase(t *testing.T) {
	t.Parallel()

	t.Run("sends auth and version headers", func(t *testing.T) {
		t.Parallel()

		var auth, version, contentType string
		mux := http.NewServeMux()
		mux.HandleFunc("POST /databases/db1/query", func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			version = r.Header.Get("Notion-Version")
			contentType = r.Header.Get("Content-Type")
			writeJSON(t, w, http.StatusOK, `{"object":"list","results":[],"has_more":false,"next_cursor":null}`)
		})
		client := newTestClient(t, mux)

		pages, err := client.QueryDatabase(context.Background(), "db1", nil)

		require.NoError(t, err)
		assert.Empty(t, pages)
		assert.Equal(t, "Bearer secret-token", auth)
		assert.Equal(t, notion.APIVersion, version)
		assert.Equal(t, "application/json", contentType)
	})

	t.Run("follows cursors and sends sorts", func(t *testing.T) {
		t.Parallel()

		var bodies []notion.DatabaseQuery
		mux := http.NewServeMux()
		mux.HandleFunc("POST /databases/db1/query", func(w http.ResponseWriter, r *http.Request) {
			var q notion.DatabaseQuery
			_ = json.NewDecoder(r.Body).Decode(&q)
			bodies = append(bodies, q)
			if q.StartCursor == "" {
				writeJSON(t, w, http.StatusOK, `{"results":[{"object":"page","id":"p1"}],"has_more":true,"next_cursor":"c2"}`)
				return
			}
			writeJSON(t, w, http.StatusOK, `{"results":[{"object":"page","id":"p2"}],"has_more":false,"next_cursor":null}`)
		})
		client := newTestClient(t, mux)

		pages, err := client.QueryDatabase(context.Background(), "db1", []notion.Sort{{Property: "Name", Direction: notion.Ascending}})

		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "p1", pages[0].ID)
		assert.Equal(t, "p2", pages[1].ID)
		require.Len(t, bodies, 2)
		assert.Equal(t, "c2", bodies[1].StartCursor)
		assert.Equal(t, []notion.Sort{{Property: "Name", Direction: "ascending"}}, bodies[0].Sorts)
	})

	t.Run("maps API errors to application codes", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			status int
			body   string
			code   string
		}{
			{"not found", 404, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find database"}`, notionmark.ENOTFOUND},
			{"unauthorized", 401, `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`, notionmark.EUNAUTHORIZED},
			{"validation", 400, `{"object":"error","status":400,"code":"validation_error","message":"body failed validation"}`, notionmark.EINVALID},
			{"conflict", 409, `{"object":"error","status":409,"code":"conflict_error","message":"Conflict occurred"}`, notionmark.ECONFLICT},
			{"rate limited", 429, `{"object":"error","status":429,"code":"rate_limited","message":"slow down"}`, notionmark.EINTERNAL},
			{"unparsable body", 502, `<html>bad gateway</html>`, notionmark.EINTERNAL},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				mux := http.NewServeMux()
				mux.HandleFunc("POST /databases/db1/query", func(w http.ResponseWriter, r *http.Request) {
					writeJSON(t, w, tt.status, tt.body)
				})
				client := newTestClient(t, mux)

				_, err := client.QueryDatabase(context.Background(), "db1", nil)

				require.Error(t, err)
				assert.Equal(t, tt.code, notionmark.ErrorCode(err))
			})
		}
	})

	t.Run("error message carries remote code and message", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /databases/db1/query", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, 404, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find database"}`)
		})
		client := newTestClient(t, mux)

		_, err := client.QueryDatabase(context.Background(), "db1", nil)

		assert.Equal(t, "object_not_found: Could not find database", notionmark.ErrorMessage(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.NewServeMux())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.QueryDatabase(ctx, "db1", nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_RetrievePageProperty(t *testing.T) {
	t.Parallel()

	t.Run("concatenates title segments across pages", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /pages/p1/properties/title", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("start_cursor") == "" {
				writeJSON(t, w, http.StatusOK, `{"object":"list","results":[
					{"object":"property_item","type":"title","title":{"plain_text":"Hello, "}}
				],"has_more":true,"next_cursor":"n1","type":"property_item","property_item":{"id":"title","type":"title"}}`)
				return
			}
			writeJSON(t, w, http.StatusOK, `{"object":"list","results":[
				{"object":"property_item","type":"title","title":{"plain_text":"World"}}
			],"has_more":false,"next_cursor":null,"type":"property_item","property_item":{"id":"title","type":"title"}}`)
		})
		client := newTestClient(t, mux)

		v, err := client.RetrievePageProperty(context.Background(), "p1", "title")

		require.NoError(t, err)
		assert.Equal(t, &notion.TitleValue{Text: "Hello, World"}, v)
	})

	t.Run("empty title decodes to empty text", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /pages/p1/properties/title", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"object":"list","results":[],"has_more":false,"next_cursor":null,"type":"property_item","property_item":{"id":"title","type":"title"}}`)
		})
		client := newTestClient(t, mux)

		v, err := client.RetrievePageProperty(context.Background(), "p1", "title")

		require.NoError(t, err)
		assert.Equal(t, &notion.TitleValue{}, v)
	})

	t.Run("collects every relation", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /pages/p1/properties/rel", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"object":"list","results":[
				{"object":"property_item","type":"relation","relation":{"id":"t1"}},
				{"object":"property_item","type":"relation","relation":{"id":"t2"}}
			],"has_more":false,"next_cursor":null,"type":"property_item","property_item":{"id":"rel","type":"relation"}}`)
		})
		client := newTestClient(t, mux)

		v, err := client.RetrievePageProperty(context.Background(), "p1", "rel")

		require.NoError(t, err)
		assert.Equal(t, &notion.RelationValue{IDs: []string{"t1", "t2"}}, v)
	})

	t.Run("decodes url item", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /pages/p1/properties/u", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"object":"property_item","id":"u","type":"url","url":"https://example.com"}`)
		})
		client := newTestClient(t, mux)

		v, err := client.RetrievePageProperty(context.Background(), "p1", "u")

		require.NoError(t, err)
		assert.Equal(t, &notion.URLValue{URL: "https://example.com"}, v)
	})

	t.Run("null url decodes to empty", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /pages/p1/properties/u", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"object":"property_item","id":"u","type":"url","url":null}`)
		})
		client := newTestClient(t, mux)

		v, err := client.RetrievePageProperty(context.Background(), "p1", "u")

		require.NoError(t, err)
		assert.Equal(t, &notion.URLValue{}, v)
	})

	t.Run("unknown kinds decode to nil", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /pages/p1/properties/n", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"object":"property_item","id":"n","type":"number","number":3}`)
		})
		mux.HandleFunc("GET /pages/p1/properties/rt", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"object":"list","results":[{"object":"property_item","type":"rich_text","rich_text":{"plain_text":"x"}}],"has_more":false,"next_cursor":null,"type":"property_item","property_item":{"id":"rt","type":"rich_text"}}`)
		})
		client := newTestClient(t, mux)

		v, err := client.RetrievePageProperty(context.Background(), "p1", "n")
		require.NoError(t, err)
		assert.Nil(t, v)

		v, err = client.RetrievePageProperty(context.Background(), "p1", "rt")
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
