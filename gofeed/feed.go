// Package gofeed implements a lenient feed parser using the gofeed library.
// It accepts RSS, Atom and JSON Feed documents that strict XML parsing rejects.
package gofeed

import (
	"strings"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/goquery"
	"github.com/mmcdole/gofeed"
)

var _ ghostwriter.FeedParser = (*FeedParser)(nil)

// FeedParser parses feeds with gofeed's universal parser.
type FeedParser struct{}

// ParseFeed returns the feed items that have both a title and a link.
func (p *FeedParser) ParseFeed(data string) ([]ghostwriter.Article, error) {
	feed, err := gofeed.NewParser().ParseString(data)
	if err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "parse feed: %v", err)
	}

	var articles []ghostwriter.Article
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		desc := item.Description
		if strings.TrimSpace(desc) == "" {
			desc = item.Content
		}
		articles = append(articles, ghostwriter.Article{
			Title:       title,
			URL:         link,
			Description: ghostwriter.Truncate(goquery.StripHTML(desc), ghostwriter.DescriptionLimit),
		})
	}
	return articles, nil
}
