package goquery_test

import (
	"testing"

	"github.com/fwojciec/notionmark/goquery"
	"github.com/stretchr/testify/assert"
)

func TestSelectIcon(t *testing.T) {
	t.Parallel()

	t.Run("prefers apple-touch-icon", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta property="og:image" content="https:///example.com/assets/social.png" />
    <link rel="apple-touch-icon" href="https://example.com/apple-logo.png" type="image/svg+xml" />
    <link rel="icon" href="https://example.com/logo.svg" type="image/svg+xml" />
    <title>test</title>
  </head>
</html>`)

		icon, ok := goquery.SelectIcon(doc, origin)

		assert.True(t, ok)
		assert.Equal(t, "https://example.com/apple-logo.png", icon)
	})

	t.Run("apple-touch-icon wins regardless of size", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head>
<link rel="icon" sizes="32x32" href="B">
<link rel="apple-touch-icon" href="A">
</head>`)

		icon, ok := goquery.SelectIcon(doc, origin)

		assert.True(t, ok)
		assert.Equal(t, "A", icon)
	})

	t.Run("prefers largest icon", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head>
<link rel="apple-touch-icon" sizes="32x32" href="https://example.com/favicon/apple-touch-icon-32.png">
<link rel="apple-touch-icon" sizes="180x180" href="https://example.com/favicon/apple-touch-icon-180.png">
<link rel="icon" href="https://example.com/logo.svg" type="image/svg+xml" />
</head>`)

		icon, ok := goquery.SelectIcon(doc, origin)

		assert.True(t, ok)
		assert.Equal(t, "https://example.com/favicon/apple-touch-icon-180.png", icon)
	})

	t.Run("prefixes root-relative path with origin", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head>
<link rel="apple-touch-icon" sizes="32x32" href="/favicon/apple-touch-icon-32.png">
<link rel="apple-touch-icon" sizes="16x16" href="/favicon/apple-touch-icon-16.png">
<link rel="icon" href="favicon/logo.svg" type="image/svg+xml" />
</head>`)

		icon, ok := goquery.SelectIcon(doc, origin)

		assert.True(t, ok)
		assert.Equal(t, "https://example.com/favicon/apple-touch-icon-32.png", icon)
	})

	t.Run("falls back to icon without apple-touch-icon", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head>
<link rel="icon" type="image/png" sizes="32x32" href="/favicon/favicon-32x32.png">
<link rel="icon" type="image/png" sizes="16x16" href="/favicon/favicon-16x16.png">
</head>`)

		icon, ok := goquery.SelectIcon(doc, origin)

		assert.True(t, ok)
		assert.Equal(t, "https://example.com/favicon/favicon-32x32.png", icon)
	})

	t.Run("accepts shortcut icon", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><link rel="shortcut icon" href="/favicon.ico"></head>`)

		icon, ok := goquery.SelectIcon(doc, origin)

		assert.True(t, ok)
		assert.Equal(t, "https://example.com/favicon.ico", icon)
	})

	t.Run("leaves bare relative path unresolved", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><link rel="icon" href="favicon/logo.svg"></head>`)

		icon, ok := goquery.SelectIcon(doc, origin)

		assert.True(t, ok)
		assert.Equal(t, "favicon/logo.svg", icon)
	})

	t.Run("rel must match exactly", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head>
<link rel="Icon" href="/upper.ico">
<link rel="icon shortcut" href="/reversed.ico">
<link rel="apple-touch-icon-precomposed" href="/precomposed.png">
<link rel="stylesheet" href="/style.css">
</head>`)

		_, ok := goquery.SelectIcon(doc, origin)

		assert.False(t, ok)
	})

	t.Run("reports absence without icons", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta property="og:image" content="https:///example.com/assets/social.png" />
    <title>test</title>
  </head>
  <body><h1>Hello World</h1></body>
</html>`)

		_, ok := goquery.SelectIcon(doc, origin)

		assert.False(t, ok)
	})

	t.Run("reports absence when no candidate has an href", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><link rel="apple-touch-icon" sizes="180x180"><link rel="icon" href="/favicon.ico"></head>`)

		_, ok := goquery.SelectIcon(doc, origin)

		assert.False(t, ok, "generic icons are not consulted once apple-touch-icons exist")
	})
}

func TestLargestIcon(t *testing.T) {
	t.Parallel()

	t.Run("first wins ties", func(t *testing.T) {
		t.Parallel()

		got := goquery.LargestIcon([]goquery.IconCandidate{
			{Href: "first", SizeHint: 32},
			{Href: "second", SizeHint: 32},
		})

		assert.Equal(t, "first", got)
	})

	t.Run("unsized candidate wins when first", func(t *testing.T) {
		t.Parallel()

		got := goquery.LargestIcon([]goquery.IconCandidate{
			{Href: "unsized", SizeHint: 0},
			{Href: "also-unsized", SizeHint: 0},
		})

		assert.Equal(t, "unsized", got)
	})

	t.Run("larger candidate without href does not raise the maximum", func(t *testing.T) {
		t.Parallel()

		got := goquery.LargestIcon([]goquery.IconCandidate{
			{Href: "small", SizeHint: 16},
			{Href: "", SizeHint: 512},
			{Href: "medium", SizeHint: 32},
		})

		assert.Equal(t, "medium", got)
	})

	t.Run("tie after href-less larger candidate keeps first", func(t *testing.T) {
		t.Parallel()

		got := goquery.LargestIcon([]goquery.IconCandidate{
			{Href: "a", SizeHint: 180},
			{Href: "", SizeHint: 512},
			{Href: "b", SizeHint: 180},
		})

		assert.Equal(t, "a", got)
	})

	t.Run("returns empty without hrefs", func(t *testing.T) {
		t.Parallel()

		got := goquery.LargestIcon([]goquery.IconCandidate{{SizeHint: 16}})

		assert.Empty(t, got)
	})
}

func TestParseSizeHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sizes string
		want  int
	}{
		{"32x32", 32},
		{"180x180", 180},
		{"16x16 32x32", 16},
		{"any", 0},
		{"", 0},
		{"32", 0},
		{"32X32", 0},
		{"icon-64x48", 64},
		{"99999999999999999999x1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.sizes, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.ParseSizeHint(tt.sizes))
		})
	}
}
