package mock

import (
	"context"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.ArticleDiscoverer = (*ArticleDiscoverer)(nil)

// ArticleDiscoverer is a mock implementation of ghostwriter.ArticleDiscoverer.
type ArticleDiscoverer struct {
	DiscoverFn func(ctx context.Context, blogURL string) ([]ghostwriter.Article, error)
}

func (d *ArticleDiscoverer) Discover(ctx context.Context, blogURL string) ([]ghostwriter.Article, error) {
	return d.DiscoverFn(ctx, blogURL)
}

var _ ghostwriter.FeedParser = (*FeedParser)(nil)

// FeedParser is a mock implementation of ghostwriter.FeedParser.
type FeedParser struct {
	ParseFeedFn func(data string) ([]ghostwriter.Article, error)
}

func (p *FeedParser) ParseFeed(data string) ([]ghostwriter.Article, error) {
	return p.ParseFeedFn(data)
}

var _ ghostwriter.BodyExtractor = (*BodyExtractor)(nil)

// BodyExtractor is a mock implementation of ghostwriter.BodyExtractor.
type BodyExtractor struct {
	FetchBodyFn func(ctx context.Context, url string) (string, error)
}

func (e *BodyExtractor) FetchBody(ctx context.Context, url string) (string, error) {
	return e.FetchBodyFn(ctx, url)
}
