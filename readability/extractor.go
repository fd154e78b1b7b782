// Package readability extracts article metadata with go-readability.
package readability

import (
	"net/url"
	"strings"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/go-shiori/go-readability"
)

var _ ghostwriter.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract an article's title, excerpt
// and text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML fetched from pageURL. Relative links inside the
// article are resolved against pageURL when it parses.
func (e *Extractor) Extract(rawHTML, pageURL string) (*ghostwriter.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "readability: %v", err)
	}

	return &ghostwriter.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		Description: strings.TrimSpace(article.Excerpt),
		Text:        strings.TrimSpace(article.TextContent),
	}, nil
}
