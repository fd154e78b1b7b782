package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.ArticleDiscoverer = (*Discoverer)(nil)

// feedLinkSelectors locate a feed advertised by the blog root page, in preference order.
var feedLinkSelectors = []string{
	`link[rel="alternate"][type="application/rss+xml"]`,
	`link[rel="alternate"][type="application/atom+xml"]`,
}

// articleLinkSelectors locate article links when no usable feed exists, in order.
var articleLinkSelectors = []string{
	"article a[href]",
	".post-title a",
	".entry-title a",
	"h2 a[href]",
	"h3 a[href]",
}

// minTitleLength is the minimum anchor text length for a heuristic article.
const minTitleLength = 5

// Discoverer finds candidate articles on a blog. It prefers the blog's
// advertised RSS or Atom feed and falls back to HTML heuristics.
type Discoverer struct {
	Fetcher ghostwriter.Fetcher

	// FeedParsers are tried in order until one yields at least one article.
	FeedParsers []ghostwriter.FeedParser

	// Limiter throttles requests per host. Optional.
	Limiter ghostwriter.DomainLimiter
}

// Discover returns the articles found from blogURL.
func (d *Discoverer) Discover(ctx context.Context, blogURL string) ([]ghostwriter.Article, error) {
	base, err := url.Parse(blogURL)
	if err != nil || base.Host == "" {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "invalid blog URL %q", blogURL)
	}

	html, err := d.fetch(ctx, base, blogURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "failed to parse HTML: %v", err)
	}

	if feedURL := FindFeedURL(doc, base); feedURL != "" {
		if articles := d.fromFeed(ctx, feedURL); len(articles) > 0 {
			return articles, nil
		}
	}

	return ExtractArticles(doc, base), nil
}

// fromFeed fetches and parses the feed. Any failure yields no articles so
// the caller can fall back to heuristics.
func (d *Discoverer) fromFeed(ctx context.Context, feedURL string) []ghostwriter.Article {
	feedBase, err := url.Parse(feedURL)
	if err != nil {
		return nil
	}

	data, err := d.fetch(ctx, feedBase, feedURL)
	if err != nil {
		return nil
	}

	for _, p := range d.FeedParsers {
		articles, err := p.ParseFeed(data)
		if err != nil || len(articles) == 0 {
			continue
		}
		for i := range articles {
			if resolved, ok := ResolveURL(feedBase, articles[i].URL); ok {
				articles[i].URL = resolved
			}
		}
		return articles
	}
	return nil
}

func (d *Discoverer) fetch(ctx context.Context, u *url.URL, rawURL string) (string, error) {
	if d.Limiter != nil {
		if err := d.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	body, err := d.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		if ghostwriter.ErrorCode(err) == ghostwriter.EFETCH {
			return "", err
		}
		return "", ghostwriter.Errorf(ghostwriter.EFETCH, "fetch %s: %v", rawURL, err)
	}
	return body, nil
}

// FindFeedURL returns the absolute URL of the feed advertised in the page
// head, preferring RSS over Atom. Returns "" if none is advertised.
func FindFeedURL(doc *goquery.Document, base *url.URL) string {
	for _, sel := range feedLinkSelectors {
		href, ok := doc.Find(sel).First().Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			continue
		}
		if resolved, ok := ResolveURL(base, href); ok {
			return resolved
		}
	}
	return ""
}

// ExtractArticles finds article links in a blog index page using common
// markup conventions. Only links on the blog's own host are kept, each URL
// at most once, in selector order.
func ExtractArticles(doc *goquery.Document, base *url.URL) []ghostwriter.Article {
	var articles []ghostwriter.Article
	seen := make(map[string]bool)

	for _, selector := range articleLinkSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || href == "" {
				return
			}
			abs, ok := ResolveURL(base, href)
			if !ok || seen[abs] {
				return
			}
			if !isSameHost(base, abs) {
				return
			}
			// Marked seen before the title check: a short-titled anchor
			// suppresses later anchors to the same URL.
			seen[abs] = true

			title := strings.TrimSpace(sel.Text())
			if len([]rune(title)) < minTitleLength {
				return
			}

			desc := sel.Closest("article, .post, .entry, li, div").
				Find("p, .excerpt, .summary").First().Text()

			articles = append(articles, ghostwriter.Article{
				Title:       title,
				URL:         abs,
				Description: ghostwriter.Truncate(strings.TrimSpace(desc), ghostwriter.DescriptionLimit),
			})
		})
	}
	return articles
}
