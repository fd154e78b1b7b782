package scan_test

import (
	"context"
	"errors"
	"testing"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/mock"
	"github.com/Molefas/ghost-writer/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return html, nil }}
}

func extractor(res *ghostwriter.ExtractResult, err error) *mock.Extractor {
	return &mock.Extractor{ExtractFn: func(string, string) (*ghostwriter.ExtractResult, error) { return res, err }}
}

func TestArticleScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("records article with extracted title and excerpt", func(t *testing.T) {
		t.Parallel()

		e := setupEnv(t)
		src := e.addSource(t, &ghostwriter.Source{Kind: ghostwriter.SourceArticle, Name: "Saved", URL: "https://example.com/post"})
		s := &scan.ArticleScanner{
			Sources:      e.sources,
			Inspirations: e.inspirations,
			Fetcher:      staticFetcher("<html></html>"),
			Interests:    profile("- compilers"),
			Extractors: []ghostwriter.Extractor{
				extractor(&ghostwriter.ExtractResult{Title: "Writing compilers", Description: "A tour"}, nil),
			},
			Now: now,
		}

		result := s.Scan(context.Background(), src.ID)

		require.Empty(t, result.Error)
		assert.True(t, result.Added)
		require.NotNil(t, result.Inspiration)
		assert.Equal(t, "Writing compilers", result.Inspiration.Title)
		assert.Equal(t, "A tour", result.Inspiration.Description)
		assert.Equal(t, 10, result.Inspiration.Score)
		assert.Len(t, e.allInspirations(t), 1)
	})

	t.Run("falls through failing extractors and uses text excerpt", func(t *testing.T) {
		t.Parallel()

		e := setupEnv(t)
		src := e.addSource(t, &ghostwriter.Source{Kind: ghostwriter.SourceArticle, Name: "Saved", URL: "https://example.com/post"})
		s := &scan.ArticleScanner{
			Sources:      e.sources,
			Inspirations: e.inspirations,
			Fetcher:      staticFetcher("<html></html>"),
			Extractors: []ghostwriter.Extractor{
				extractor(nil, errors.New("no article")),
				extractor(&ghostwriter.ExtractResult{Title: "  "}, nil),
				extractor(&ghostwriter.ExtractResult{Title: "Found", Text: "first   line\n\nsecond"}, nil),
			},
		}

		result := s.Scan(context.Background(), src.ID)

		require.True(t, result.Added)
		assert.Equal(t, "Found", result.Inspiration.Title)
		assert.Equal(t, "first line second", result.Inspiration.Description)
	})

	t.Run("falls back to source name without extractable title", func(t *testing.T) {
		t.Parallel()

		e := setupEnv(t)
		src := e.addSource(t, &ghostwriter.Source{Kind: ghostwriter.SourceArticle, Name: "Saved link", URL: "https://example.com/post"})
		s := &scan.ArticleScanner{
			Sources:      e.sources,
			Inspirations: e.inspirations,
			Fetcher:      staticFetcher("<html></html>"),
		}

		result := s.Scan(context.Background(), src.ID)

		require.True(t, result.Added)
		assert.Equal(t, "Saved link", result.Inspiration.Title)
	})

	t.Run("reports duplicate without fetching", func(t *testing.T) {
		t.Parallel()

		e := setupEnv(t)
		src := e.addSource(t, &ghostwriter.Source{Kind: ghostwriter.SourceArticle, Name: "Saved", URL: "https://example.com/post"})
		require.NoError(t, e.inspirations.CreateInspiration(context.Background(), &ghostwriter.Inspiration{
			SourceID: "other", Title: "Existing", URL: "https://example.com/post", Score: 5,
		}))
		s := &scan.ArticleScanner{
			Sources:      e.sources,
			Inspirations: e.inspirations,
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch must not be called")
				return "", nil
			}},
		}

		result := s.Scan(context.Background(), src.ID)

		assert.Equal(t, &scan.ArticleResult{SourceName: "Saved", Duplicate: true}, result)
		assert.Len(t, e.allInspirations(t), 1)
	})

	t.Run("reports fetch failure", func(t *testing.T) {
		t.Parallel()

		e := setupEnv(t)
		src := e.addSource(t, &ghostwriter.Source{Kind: ghostwriter.SourceArticle, Name: "Saved", URL: "https://example.com/post"})
		s := &scan.ArticleScanner{
			Sources:      e.sources,
			Inspirations: e.inspirations,
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
				return "", ghostwriter.Errorf(ghostwriter.EFETCH, "HTTP 404 for https://example.com/post")
			}},
		}

		result := s.Scan(context.Background(), src.ID)

		assert.Equal(t, &scan.ArticleResult{SourceName: "Saved", Error: "HTTP 404 for https://example.com/post"}, result)
		assert.Empty(t, e.allInspirations(t))
	})

	t.Run("rejects non-article source", func(t *testing.T) {
		t.Parallel()

		e := setupEnv(t)
		src := e.addSource(t, &ghostwriter.Source{Kind: ghostwriter.SourceBlog, Name: "Blog", URL: "https://example.com"})
		s := &scan.ArticleScanner{Sources: e.sources, Inspirations: e.inspirations}

		result := s.Scan(context.Background(), src.ID)

		assert.Contains(t, result.Error, "not an article source")
	})
}
