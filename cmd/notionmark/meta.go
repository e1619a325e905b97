package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/notionmark"
	"github.com/fwojciec/notionmark/clip"
)

// Run executes the meta command.
func (c *MetaCmd) Run(deps *Dependencies) error {
	page, err := deps.Clipper.Preview(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notionmark.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	printPage(deps.Stdout, page)
	return nil
}

// printPage writes the fields of page that are present.
func printPage(w io.Writer, page *clip.Page) {
	fmt.Fprintf(w, "URL:       %s\n", page.URL)
	fmt.Fprintf(w, "Title:     %s\n", page.Meta.Title)
	if page.Meta.OGPImage != "" {
		fmt.Fprintf(w, "Image:     %s\n", page.Meta.OGPImage)
	}
	if page.Meta.Icon != "" {
		fmt.Fprintf(w, "Icon:      %s\n", page.Meta.Icon)
	}
	if !page.Published.IsZero() {
		fmt.Fprintf(w, "Published: %s\n", notionmark.FormatDate(page.Published))
	}
}
