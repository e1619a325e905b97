package notion

import "strings"

// Page is a Notion page object as returned by queries and page creation.
type Page struct {
	Object     string                  `json:"object"`
	ID         string                  `json:"id"`
	Icon       *Icon                   `json:"icon"`
	Cover      *Cover                  `json:"cover"`
	Properties map[string]PropertyMeta `json:"properties"`
}

// PropertyMeta identifies a page property without its value.
type PropertyMeta struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Icon and cover kinds.
const (
	KindEmoji    = "emoji"
	KindExternal = "external"
	KindFile     = "file"
)

// Icon is a page icon: an emoji, an external image or a Notion-hosted file.
// Type selects which of the remaining fields is set.
type Icon struct {
	Type     string `json:"type"`
	Emoji    string `json:"emoji,omitempty"`
	External *File  `json:"external,omitempty"`
	File     *File  `json:"file,omitempty"`
}

// ExternalIcon returns an icon pointing at url.
func ExternalIcon(url string) *Icon {
	return &Icon{Type: KindExternal, External: &File{URL: url}}
}

// Value returns the emoji or image URL of the icon, or "" for a nil or
// unrecognised icon.
func (i *Icon) Value() string {
	if i == nil {
		return ""
	}
	switch i.Type {
	case KindEmoji:
		return i.Emoji
	case KindExternal:
		return i.External.url()
	case KindFile:
		return i.File.url()
	default:
		return ""
	}
}

// Cover is a page cover: an external image or a Notion-hosted file.
type Cover struct {
	Type     string `json:"type"`
	External *File  `json:"external,omitempty"`
	File     *File  `json:"file,omitempty"`
}

// ExternalCover returns a cover pointing at url.
func ExternalCover(url string) *Cover {
	return &Cover{Type: KindExternal, External: &File{URL: url}}
}

// Value returns the image URL of the cover, or "" for a nil or unrecognised cover.
func (c *Cover) Value() string {
	if c == nil {
		return ""
	}
	switch c.Type {
	case KindExternal:
		return c.External.url()
	case KindFile:
		return c.File.url()
	default:
		return ""
	}
}

// File is a link to an image.
type File struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time,omitempty"`
}

func (f *File) url() string {
	if f == nil {
		return ""
	}
	return f.URL
}

// PropertyValue is the decoded value of a page property.
// It is one of *TitleValue, *URLValue or *RelationValue.
type PropertyValue interface {
	propertyValue()
}

// TitleValue is the plain text of a title property.
type TitleValue struct {
	Text string
}

// URLValue is the value of a url property. URL is "" when unset.
type URLValue struct {
	URL string
}

// RelationValue holds the IDs of related pages in order.
type RelationValue struct {
	IDs []string
}

func (*TitleValue) propertyValue()    {}
func (*URLValue) propertyValue()      {}
func (*RelationValue) propertyValue() {}

// Property item kinds.
const (
	propertyTitle    = "title"
	propertyURL      = "url"
	propertyRelation = "relation"
)

// propertyItemResponse is either a paginated property_item list or a single
// property item, told apart by Object.
type propertyItemResponse struct {
	Object       string           `json:"object"`
	Type         string           `json:"type"`
	Results      []propertyItem   `json:"results"`
	HasMore      bool             `json:"has_more"`
	NextCursor   string           `json:"next_cursor"`
	PropertyItem propertyItemMeta `json:"property_item"`
	URL          *string          `json:"url"`
}

type propertyItemMeta struct {
	Type string `json:"type"`
}

type propertyItem struct {
	Type     string    `json:"type"`
	Title    *RichText `json:"title"`
	Relation *Relation `json:"relation"`
}

// RichText is a single rich text segment.
type RichText struct {
	PlainText string       `json:"plain_text,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
}

// TextContent is the content of a text segment in requests.
type TextContent struct {
	Content string `json:"content"`
}

// Relation references a related page.
type Relation struct {
	ID string `json:"id"`
}

// single decodes a non-paginated property item.
func (r *propertyItemResponse) single() PropertyValue {
	switch r.Type {
	case propertyURL:
		if r.URL == nil {
			return &URLValue{}
		}
		return &URLValue{URL: *r.URL}
	default:
		return nil
	}
}

// decodeList decodes the items of a paginated property of the given kind.
func decodeList(kind string, items []propertyItem) PropertyValue {
	switch kind {
	case propertyTitle:
		var b strings.Builder
		for _, item := range items {
			if item.Type == propertyTitle && item.Title != nil {
				b.WriteString(item.Title.PlainText)
			}
		}
		return &TitleValue{Text: b.String()}
	case propertyRelation:
		ids := make([]string, 0, len(items))
		for _, item := range items {
			if item.Type == propertyRelation && item.Relation != nil {
				ids = append(ids, item.Relation.ID)
			}
		}
		return &RelationValue{IDs: ids}
	default:
		return nil
	}
}

// CreatePageRequest is the body of a page creation request.
type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyInput `json:"properties"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Cover      *Cover                   `json:"cover,omitempty"`
}

// Parent places a new page in a database.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// PropertyInput is a property value in a page creation request.
// Exactly one field is set.
type PropertyInput struct {
	Title    []RichText `json:"title,omitempty"`
	URL      *string    `json:"url,omitempty"`
	Relation []Relation `json:"relation,omitempty"`
	Date     *Date      `json:"date,omitempty"`
}

// Date is a date property value.
type Date struct {
	Start string `json:"start"`
}
