package notionmark

import (
	"context"
	"slices"
	"strings"
)

// AllTags is the tag filter value that disables tag filtering.
const AllTags = "all"

// Bookmark represents a page in the bookmark database.
type Bookmark struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Favicon string   `json:"favicon,omitempty"` // emoji or image URL
	Cover   string   `json:"cover,omitempty"`
	Tags    []string `json:"tags"` // tag page IDs
}

// BookmarkService represents a service for reading bookmarks.
type BookmarkService interface {
	// FindBookmarks returns every bookmark in the database, sorted by name.
	FindBookmarks(ctx context.Context, databaseID string) ([]*Bookmark, error)
}

// BookmarkFilter narrows a bookmark list in memory.
type BookmarkFilter struct {
	// Query matches bookmark names case-insensitively as a literal substring.
	Query string `json:"query"`

	// Tag matches bookmarks carrying this tag ID exactly.
	// Empty or AllTags disables tag filtering.
	Tag string `json:"tag"`
}

// Match returns true if the bookmark passes both filters.
func (f BookmarkFilter) Match(b *Bookmark) bool {
	if f.Query != "" && !FilterName(f.Query, b.Name) {
		return false
	}
	if f.Tag != "" && f.Tag != AllTags && !FilterTag(f.Tag, b.Tags) {
		return false
	}
	return true
}

// FilterBookmarks returns the bookmarks matching the filter in their original order.
func FilterBookmarks(bookmarks []*Bookmark, filter BookmarkFilter) []*Bookmark {
	matched := make([]*Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if filter.Match(b) {
			matched = append(matched, b)
		}
	}
	return matched
}

// FilterName reports whether target contains searchText, ignoring case.
func FilterName(searchText, target string) bool {
	return strings.Contains(strings.ToLower(target), strings.ToLower(searchText))
}

// FilterTag reports whether targets contains searchTag. Comparison is case-sensitive.
func FilterTag(searchTag string, targets []string) bool {
	return slices.Contains(targets, searchTag)
}
