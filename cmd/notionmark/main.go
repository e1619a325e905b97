package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/notionmark"
	"github.com/fwojciec/notionmark/cache"
	"github.com/fwojciec/notionmark/clip"
	"github.com/fwojciec/notionmark/goquery"
	nmhttp "github.com/fwojciec/notionmark/http"
	"github.com/fwojciec/notionmark/notion"
	"github.com/fwojciec/notionmark/rod"
	nmslog "github.com/fwojciec/notionmark/slog"
	"github.com/fwojciec/notionmark/sqlite"
	"github.com/fwojciec/notionmark/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache database path. Overridden by --db or NOTIONMARK_DB.
	DBPath string

	// Notion API root. Overridable for end-to-end tests.
	NotionBaseURL string

	// SQLite database used by the cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:        defaultDBPath(),
		NotionBaseURL: notion.DefaultBaseURL,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("notionmark"),
		kong.Description("Clip web pages to Notion and browse your bookmarks"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'notionmark --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.TagDatabaseID = cli.TagDatabaseID
	deps.BookmarkDatabaseID = cli.BookmarkDatabaseID
	deps.ArticleDatabaseID = cli.ArticleDatabaseID

	if cmd != "meta" {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set NOTIONMARK_DB to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Cache = sqlite.NewCacheService(m.DB)
	}

	var client *notion.Client
	if cli.Token != "" {
		client = notion.NewClient(cli.Token, notion.WithBaseURL(m.NotionBaseURL))
	}

	switch cmd {
	case "bookmarks", "tags":
		if client == nil {
			return missingToken(stderr)
		}
		refresh := cli.Bookmarks.Refresh || cli.Tags.Refresh
		opts := []cache.Option{cache.WithTTL(cli.CacheTTL), cache.WithRefresh(refresh)}
		deps.Tags = nmslog.NewLoggingTagService(
			cache.NewTagService(notion.NewTagService(client), deps.Cache, opts...), logger)
		deps.Bookmarks = nmslog.NewLoggingBookmarkService(
			cache.NewBookmarkService(notion.NewBookmarkService(client), deps.Cache, opts...), logger)

	case "clip", "meta":
		render := cli.Clip.Render || cli.Meta.Render
		fetcher, err := newFetcher(render, cli)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Clipper = &clip.Clipper{
			Fetcher:     nmslog.NewLoggingFetcher(fetcher, logger),
			Extractor:   goquery.NewMetaExtractor(),
			Dates:       trafilatura.NewDateDetector(),
			RateLimiter: clip.NewDomainLimiter(clip.DefaultDomainRate),
			Concurrency: cli.Clip.Concurrency,
			DryRun:      cli.Clip.DryRun,
			Log: func(format string, args ...any) {
				logger.Debug(fmt.Sprintf(format, args...))
			},
		}

		if cmd == "clip" {
			if client == nil && !cli.Clip.DryRun {
				return missingToken(stderr)
			}
			if client != nil {
				deps.Clipper.Articles = nmslog.NewLoggingArticleService(notion.NewArticleService(client), logger)
				deps.Tags = nmslog.NewLoggingTagService(
					cache.NewTagService(notion.NewTagService(client), deps.Cache, cache.WithTTL(cli.CacheTTL)), logger)
			}
		}
	}

	return kongCtx.Run(deps)
}

func newFetcher(render bool, cli *CLI) (notionmark.Fetcher, error) {
	if render {
		return rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
	}
	return nmhttp.NewFetcher(nmhttp.WithTimeout(cli.Timeout)), nil
}

func missingToken(stderr io.Writer) error {
	fmt.Fprintln(stderr, "Hint: Create an integration at https://www.notion.so/my-integrations and set NOTION_TOKEN")
	return notionmark.Errorf(notionmark.EUNAUTHORIZED, "NOTION_TOKEN not set")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "notionmark.db"
	}
	return filepath.Join(home, ".notionmark", "cache.db")
}
