package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.BodyExtractor = (*BodyExtractor)(nil)

// contentSelectors identify the main content container, in priority order.
var contentSelectors = []string{
	"article",
	".post-content",
	".entry-content",
	".article-content",
	".blog-post-content",
	`[role="main"]`,
	"main",
}

// BodyExtractor fetches an article page and extracts its main text.
type BodyExtractor struct {
	Fetcher ghostwriter.Fetcher
}

// FetchBody returns the cleaned main text of the page at url.
func (e *BodyExtractor) FetchBody(ctx context.Context, url string) (string, error) {
	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		if ghostwriter.ErrorCode(err) == ghostwriter.EFETCH {
			return "", err
		}
		return "", ghostwriter.Errorf(ghostwriter.EFETCH, "fetch %s: %v", url, err)
	}
	return ExtractBody(html)
}

// ExtractBody returns the cleaned text of the page's main content container.
// The first matching priority selector wins; otherwise the div or section
// with the most direct paragraph children is used, falling back to body.
func ExtractBody(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ghostwriter.Errorf(ghostwriter.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, sel := range contentSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			return CleanText(s.First().Text()), nil
		}
	}

	best := doc.Find("body")
	bestCount := 0
	doc.Find("div, section").Each(func(_ int, s *goquery.Selection) {
		if n := s.ChildrenFiltered("p").Length(); n > bestCount {
			bestCount = n
			best = s
		}
	})

	return CleanText(best.Text()), nil
}
