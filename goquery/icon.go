package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link rel values recognized as icons. Matching is exact and case-sensitive;
// rel is not split into tokens.
const (
	relAppleTouchIcon = "apple-touch-icon"
	relIcon           = "icon"
	relShortcutIcon   = "shortcut icon"
)

var sizesRe = regexp.MustCompile(`([0-9]+)x[0-9]+`)

// IconCandidate is a <link> element considered during icon selection.
type IconCandidate struct {
	Href     string
	SizeHint int
}

// SelectIcon returns the URL of the best icon declared by the page.
//
// Apple touch icons win over generic icons regardless of size because they
// render better at large sizes. Within the chosen group the largest size hint
// wins and the first element in document order wins ties. A root-relative
// href is prefixed with origin; any other href is returned as declared.
// The bool result is false if the page declares no icon with an href.
func SelectIcon(doc *goquery.Document, origin string) (string, bool) {
	links := doc.Find("link")

	candidates := IconCandidates(links.FilterFunction(relIn(relAppleTouchIcon)))
	if len(candidates) == 0 {
		candidates = IconCandidates(links.FilterFunction(relIn(relIcon, relShortcutIcon)))
	}
	if len(candidates) == 0 {
		return "", false
	}

	href := LargestIcon(candidates)
	if href == "" {
		return "", false
	}
	return resolveIconURL(origin, href), true
}

// IconCandidates converts link elements into candidates in document order.
func IconCandidates(sel *goquery.Selection) []IconCandidate {
	candidates := make([]IconCandidate, 0, sel.Length())
	sel.Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		sizes, _ := link.Attr("sizes")
		candidates = append(candidates, IconCandidate{
			Href:     href,
			SizeHint: ParseSizeHint(sizes),
		})
	})
	return candidates
}

// LargestIcon returns the href of the candidate with the largest size hint.
//
// Candidates are scanned in order keeping a running maximum. A candidate
// replaces the current best only when its size hint is strictly greater and
// its href is non-empty; candidates without an href never move the maximum.
// Returns "" if no candidate has an href.
func LargestIcon(candidates []IconCandidate) string {
	maxSize := -1
	best := ""
	for _, c := range candidates {
		if c.SizeHint > maxSize && c.Href != "" {
			maxSize = c.SizeHint
			best = c.Href
		}
	}
	return best
}

// ParseSizeHint returns the width of the first WxH pair in a sizes attribute,
// or 0 if there is none.
func ParseSizeHint(sizes string) int {
	m := sizesRe.FindStringSubmatch(sizes)
	if m == nil {
		return 0
	}
	width, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return width
}

// resolveIconURL prefixes root-relative paths with origin.
// Bare relative paths like "favicon/logo.svg" are left unresolved.
func resolveIconURL(origin, href string) string {
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return href
}

// relIn matches link elements whose rel attribute equals one of values.
func relIn(values ...string) func(int, *goquery.Selection) bool {
	return func(_ int, sel *goquery.Selection) bool {
		rel, ok := sel.Attr("rel")
		if !ok {
			return false
		}
		for _, v := range values {
			if rel == v {
				return true
			}
		}
		return false
	}
}
