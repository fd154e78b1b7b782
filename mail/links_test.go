package mail_test

import (
	"testing"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/mail"
	"github.com/stretchr/testify/assert"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("keeps article links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/articles/one">Article One Title</a>
<a href="https://news.example.org/two">Second Story</a>`

		links := mail.ExtractLinks(html)

		assert.Equal(t, []ghostwriter.Link{
			{URL: "https://example.com/articles/one", Text: "Article One Title"},
			{URL: "https://news.example.org/two", Text: "Second Story"},
		}, links)
	})

	t.Run("drops short text and short hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/a">Read</a>
<a href="http://ab">Long enough text</a>`

		assert.Empty(t, mail.ExtractLinks(html))
	})

	t.Run("drops housekeeping and social links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/unsubscribe?u=1">Unsubscribe here</a>
<a href="https://example.com/manage-preferences">Manage preferences</a>
<a href="https://example.com/view-in-browser">View in browser</a>
<a href="mailto:someone@example.com">Email the author</a>
<a href="#section-anchor">Jump to section</a>
<a href="javascript:void(0)">Click this thing</a>
<a href="https://www.twitter.com/someone">Follow on Twitter</a>
<a href="https://x.com/someone">Follow on X now</a>
<a href="https://us1.list-manage.com/track">Tracked link here</a>
<a href="/relative/path/to/post">Relative article link</a>`

		assert.Empty(t, mail.ExtractLinks(html))
	})

	t.Run("deduplicates before checking text", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/post"><img src="x.png"></a>
<a href="https://example.com/post">A Real Post Title</a>
<a href="https://example.com/other">Other Post</a>
<a href="https://example.com/other">Other Post again</a>`

		links := mail.ExtractLinks(html)

		assert.Equal(t, []ghostwriter.Link{
			{URL: "https://example.com/other", Text: "Other Post"},
		}, links)
	})

	t.Run("returns nothing for empty body", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mail.ExtractLinks(""))
	})
}
