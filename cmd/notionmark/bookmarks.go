package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/notionmark"
	"github.com/fwojciec/notionmark/etree"
)

// Run executes the bookmarks command.
func (c *BookmarksCmd) Run(deps *Dependencies) error {
	if err := requireDatabase("NOTION_BOOKMARK_DATABASE_ID", deps.BookmarkDatabaseID, deps); err != nil {
		return err
	}

	filter := notionmark.BookmarkFilter{Query: c.Query, Tag: c.Tag}
	if c.Tag != "" && c.Tag != notionmark.AllTags {
		id, err := resolveTag(deps, c.Tag)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", notionmark.ErrorMessage(err))
			return err
		}
		filter.Tag = id
	}

	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, deps.BookmarkDatabaseID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notionmark.ErrorMessage(err))
		return err
	}
	bookmarks = notionmark.FilterBookmarks(bookmarks, filter)

	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bookmarks)

	case "xbel":
		var tags []*notionmark.Tag
		if deps.TagDatabaseID != "" {
			if tags, err = deps.Tags.FindTags(deps.Ctx, deps.TagDatabaseID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", notionmark.ErrorMessage(err))
				return err
			}
		}
		return etree.WriteXBEL(deps.Stdout, bookmarks, tags)
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks found.")
		return nil
	}

	for _, b := range bookmarks {
		fmt.Fprintf(deps.Stdout, "%s\n  %s\n", b.Name, b.URL)
	}

	return nil
}
