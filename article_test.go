package notionmark_test

import (
	"testing"

	"github.com/fwojciec/notionmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts article without title", func(t *testing.T) {
		t.Parallel()

		article := &notionmark.Article{URL: "https://example.com/post"}

		assert.NoError(t, article.Validate())
	})

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		article := &notionmark.Article{Title: "Post"}

		err := article.Validate()

		require.Error(t, err)
		assert.Equal(t, "URL is required", notionmark.ErrorMessage(err))
	})

	t.Run("rejects tag that is not a Notion ID", func(t *testing.T) {
		t.Parallel()

		article := &notionmark.Article{
			URL:  "https://example.com/post",
			Tags: []string{"727c3fc5-eb5a-41e2-bfab-ed0676f21af0", "golang"},
		}

		err := article.Validate()

		require.Error(t, err)
		assert.Equal(t, notionmark.EINVALID, notionmark.ErrorCode(err))
	})
}

func TestFindTagByName(t *testing.T) {
	t.Parallel()

	tags := []*notionmark.Tag{
		{ID: "1", Name: "Go"},
		{ID: "2", Name: "go"},
	}

	t.Run("matches exact name", func(t *testing.T) {
		t.Parallel()

		tag, err := notionmark.FindTagByName(tags, "go")

		require.NoError(t, err)
		assert.Equal(t, "2", tag.ID)
	})

	t.Run("returns ENOTFOUND for unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := notionmark.FindTagByName(tags, "Rust")

		require.Error(t, err)
		assert.Equal(t, notionmark.ENOTFOUND, notionmark.ErrorCode(err))
	})
}
