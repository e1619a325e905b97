// Package etree reads and writes bookmarks in the XML Bookmark Exchange
// Language (XBEL) understood by most browsers' import tools.
package etree

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/notionmark"
)

const xbelDoctype = `DOCTYPE xbel PUBLIC "+//IDN python.org//DTD XML Bookmark Exchange Language 1.0//EN//XML" "http://pyxml.sourceforge.net/topics/dtds/xbel.dtd"`

// WriteXBEL writes bookmarks to w as an XBEL document.
// Each tag becomes a folder, in the order given, holding its bookmarks; a
// bookmark with several tags appears in each of their folders. Bookmarks
// without a known tag are written at the top level. Empty folders are omitted.
func WriteXBEL(w io.Writer, bookmarks []*notionmark.Bookmark, tags []*notionmark.Tag) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(xbelDoctype)

	root := doc.CreateElement("xbel")
	root.CreateAttr("version", "1.0")

	known := make(map[string]bool, len(tags))
	for _, tag := range tags {
		known[tag.ID] = true
	}

	for _, tag := range tags {
		var folder *etree.Element
		for _, b := range bookmarks {
			if !notionmark.FilterTag(tag.ID, b.Tags) {
				continue
			}
			if folder == nil {
				folder = root.CreateElement("folder")
				folder.CreateElement("title").SetText(tag.Name)
			}
			writeBookmark(folder, b)
		}
	}

	for _, b := range bookmarks {
		if !hasKnownTag(b, known) {
			writeBookmark(root, b)
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing XBEL: %w", err)
	}
	return nil
}

func writeBookmark(parent *etree.Element, b *notionmark.Bookmark) {
	el := parent.CreateElement("bookmark")
	el.CreateAttr("href", b.URL)
	el.CreateElement("title").SetText(b.Name)
}

func hasKnownTag(b *notionmark.Bookmark, known map[string]bool) bool {
	for _, id := range b.Tags {
		if known[id] {
			return true
		}
	}
	return false
}

// ReadXBELURLs returns the href of every bookmark in an XBEL document, at
// any folder depth, in document order. Bookmarks without an href are skipped.
func ReadXBELURLs(r io.Reader) ([]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, notionmark.Errorf(notionmark.EINVALID, "parsing XBEL: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "xbel" {
		return nil, notionmark.Errorf(notionmark.EINVALID, "not an XBEL document")
	}

	urls := []string{}
	for _, el := range root.FindElements("//bookmark") {
		href := strings.TrimSpace(el.SelectAttrValue("href", ""))
		if href != "" {
			urls = append(urls, href)
		}
	}
	return urls, nil
}
