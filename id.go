package notionmark

import "github.com/google/uuid"

// ParseID returns the canonical dashed form of a Notion object ID.
// Notion accepts IDs with or without dashes; both forms are accepted here.
func ParseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", Errorf(EINVALID, "invalid Notion ID %q", id)
	}
	return parsed.String(), nil
}
