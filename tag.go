package notionmark

import "context"

// Tag represents a page in the tag database.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"` // emoji or image URL
}

// TagService represents a service for reading tags.
type TagService interface {
	// FindTags returns every tag in the database, sorted by name.
	FindTags(ctx context.Context, databaseID string) ([]*Tag, error)
}

// FindTagByName returns the first tag whose name equals name exactly.
// Returns ENOTFOUND if no tag matches.
func FindTagByName(tags []*Tag, name string) (*Tag, error) {
	for _, tag := range tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "tag %q not found", name)
}
