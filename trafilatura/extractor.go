// Package trafilatura extracts article metadata with go-trafilatura, which
// falls back to other heuristics on pages readability struggles with.
package trafilatura

import (
	"net/url"
	"strings"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/markusmobius/go-trafilatura"
)

var _ ghostwriter.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract an article's title, excerpt
// and text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML fetched from pageURL.
func (e *Extractor) Extract(rawHTML, pageURL string) (*ghostwriter.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{EnableFallback: true}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "trafilatura: %v", err)
	}

	return &ghostwriter.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Description: strings.TrimSpace(result.Metadata.Description),
		Text:        strings.TrimSpace(result.ContentText),
	}, nil
}
