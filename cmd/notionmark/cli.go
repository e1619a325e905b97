package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/notionmark"
	"github.com/fwojciec/notionmark/clip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	TagDatabaseID      string
	BookmarkDatabaseID string
	ArticleDatabaseID  string

	Cache     notionmark.Cache
	Tags      notionmark.TagService
	Bookmarks notionmark.BookmarkService
	Clipper   *clip.Clipper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Token              string        `env:"NOTION_TOKEN" help:"Notion integration token"`
	TagDatabaseID      string        `name:"tag-db" env:"NOTION_TAG_DATABASE_ID" help:"Tag database ID"`
	BookmarkDatabaseID string        `name:"bookmark-db" env:"NOTION_BOOKMARK_DATABASE_ID" help:"Bookmark database ID"`
	ArticleDatabaseID  string        `name:"article-db" env:"NOTION_ARTICLE_DATABASE_ID" help:"Article database ID"`
	DB                 string        `name:"db" env:"NOTIONMARK_DB" help:"Cache database path (default ~/.notionmark/cache.db)"`
	CacheTTL           time.Duration `name:"cache-ttl" default:"1h" help:"How long Notion reads are cached"`
	Timeout            time.Duration `default:"10s" help:"Page fetch timeout"`
	Verbose            bool          `short:"v" help:"Log every request"`

	Clip      ClipCmd      `cmd:"" help:"Save web pages to the article database"`
	Bookmarks BookmarksCmd `cmd:"" help:"List bookmarks"`
	Tags      TagsCmd      `cmd:"" help:"List tags"`
	Meta      MetaCmd      `cmd:"" help:"Show the metadata extracted from a page"`
	Cache     CacheCmd     `cmd:"" help:"Manage the local cache"`
}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Pages to clip"`
	From        string   `type:"existingfile" help:"Also clip every bookmark in an XBEL file"`
	Tag         []string `short:"t" help:"Tag name or ID (repeatable)"`
	Published   string   `help:"Publication date (YYYY-MM-DD); detected from the page when omitted"`
	Render      bool     `short:"r" help:"Render pages in headless Chrome before extracting"`
	DryRun      bool     `short:"n" name:"dry-run" help:"Show extracted metadata without saving"`
	Concurrency int      `short:"c" default:"4" help:"Pages clipped in parallel"`
}

// BookmarksCmd is the "bookmarks" subcommand.
type BookmarksCmd struct {
	Query   string `short:"q" help:"Case-insensitive name filter"`
	Tag     string `short:"t" default:"all" help:"Tag name or ID, or 'all'"`
	Refresh bool   `help:"Bypass the cache"`
	Format  string `short:"f" default:"text" enum:"text,xbel,json" help:"Output format (text, xbel, json)"`
}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct {
	Refresh bool `help:"Bypass the cache"`
}

// MetaCmd is the "meta" subcommand.
type MetaCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Render bool   `short:"r" help:"Render the page in headless Chrome before extracting"`
	JSON   bool   `help:"Print JSON"`
}

// CacheCmd is the "cache" subcommand.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove every cached entry"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}
