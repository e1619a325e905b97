package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/notionmark"
	"github.com/fwojciec/notionmark/clip"
	"github.com/fwojciec/notionmark/etree"
)

// Run executes the clip command.
func (c *ClipCmd) Run(deps *Dependencies) error {
	urls, err := c.urls()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notionmark.ErrorMessage(err))
		return err
	}

	if !c.DryRun {
		if err := requireDatabase("NOTION_ARTICLE_DATABASE_ID", deps.ArticleDatabaseID, deps); err != nil {
			return err
		}
	}

	tags := make([]string, 0, len(c.Tag))
	for _, value := range c.Tag {
		id, err := resolveTag(deps, value)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", notionmark.ErrorMessage(err))
			return err
		}
		tags = append(tags, id)
	}

	var published time.Time
	if c.Published != "" {
		if published, err = notionmark.ParseDate(c.Published); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", notionmark.ErrorMessage(err))
			return err
		}
	}

	reqs := make([]clip.Request, len(urls))
	for i, u := range urls {
		reqs[i] = clip.Request{URL: u, Tags: tags, Published: published}
	}

	if c.Concurrency > 0 {
		deps.Clipper.Concurrency = c.Concurrency
	}

	progress := func(event clip.ProgressEvent) {
		switch event.Type {
		case clip.ProgressStarted:
			if event.Total > 1 {
				fmt.Fprintf(deps.Stdout, "Clipping %d pages\n", event.Total)
			}
		case clip.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", event.URL, notionmark.ErrorMessage(event.Error))
		case clip.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: duplicate\n", event.URL)
		}
	}

	results := deps.Clipper.ClipAll(deps.Ctx, deps.ArticleDatabaseID, reqs, progress)

	var saved, failed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.Skipped:
		case c.DryRun:
			printPage(deps.Stdout, r.Page)
			fmt.Fprintln(deps.Stdout)
		default:
			saved++
			fmt.Fprintf(deps.Stdout, "Clipped %q (%s)\n", r.Page.Meta.Title, r.PageID)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(results))
	}
	if !c.DryRun && len(results) > 1 {
		fmt.Fprintf(deps.Stdout, "Saved %d pages\n", saved)
	}
	return nil
}

// urls returns the positional URLs followed by those read from --from.
func (c *ClipCmd) urls() ([]string, error) {
	urls := append([]string{}, c.URLs...)

	if c.From != "" {
		f, err := os.Open(c.From)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		imported, err := etree.ReadXBELURLs(f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, imported...)
	}

	if len(urls) == 0 {
		return nil, notionmark.Errorf(notionmark.EINVALID, "URL is required")
	}
	return urls, nil
}
