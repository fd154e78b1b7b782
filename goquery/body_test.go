package goquery_test

import (
	"context"
	"testing"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBody(t *testing.T) {
	t.Parallel()

	t.Run("uses first priority selector", func(t *testing.T) {
		t.Parallel()

		html := `<body><nav>Menu</nav><main>Main area</main><article>
  <h1>Title</h1>
  <p>Body   text.</p>
</article></body>`

		text, err := goquery.ExtractBody(html)

		require.NoError(t, err)
		assert.Equal(t, "Title Body text.", text)
	})

	t.Run("falls back to container with most paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<div class="sidebar"><p>Ad</p></div>
<div class="content"><p>One.</p><p>Two.</p><p>Three.</p></div>
</body>`

		text, err := goquery.ExtractBody(html)

		require.NoError(t, err)
		assert.Equal(t, "One.Two.Three.", text)
	})

	t.Run("falls back to body when no paragraphs", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.ExtractBody(`<body><span>Just   text</span></body>`)

		require.NoError(t, err)
		assert.Equal(t, "Just text", text)
	})
}

func TestBodyExtractor_FetchBody(t *testing.T) {
	t.Parallel()

	t.Run("fetches and extracts", func(t *testing.T) {
		t.Parallel()

		e := &goquery.BodyExtractor{Fetcher: pagesFetcher(map[string]string{
			"https://blog.example.com/p": `<article>Hello there</article>`,
		})}

		text, err := e.FetchBody(context.Background(), "https://blog.example.com/p")

		require.NoError(t, err)
		assert.Equal(t, "Hello there", text)
	})

	t.Run("returns fetch error", func(t *testing.T) {
		t.Parallel()

		e := &goquery.BodyExtractor{Fetcher: pagesFetcher(nil)}

		_, err := e.FetchBody(context.Background(), "https://blog.example.com/missing")

		assert.Equal(t, ghostwriter.EFETCH, ghostwriter.ErrorCode(err))
	})
}
