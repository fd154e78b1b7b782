// Package etree implements a strict RSS 2.0 and Atom feed parser on top of
// the etree XML library.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/goquery"
	"golang.org/x/net/html/charset"
)

var _ ghostwriter.FeedParser = (*FeedParser)(nil)

// FeedParser parses RSS 2.0 items, falling back to Atom entries when the
// document has no usable items. Entries without a title or link are skipped.
type FeedParser struct{}

// ParseFeed returns the articles in data. Malformed XML is an EINVALID error.
func (p *FeedParser) ParseFeed(data string) ([]ghostwriter.Article, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromString(data); err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "parsing feed XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, ghostwriter.Errorf(ghostwriter.EINVALID, "empty feed XML")
	}

	if articles := parseRSS(doc); len(articles) > 0 {
		return articles, nil
	}
	return parseAtom(doc), nil
}

func parseRSS(doc *etree.Document) []ghostwriter.Article {
	var articles []ghostwriter.Article
	for _, item := range doc.FindElements("//item") {
		title := childText(item, "title")
		link := ""
		for _, l := range item.SelectElements("link") {
			if link = strings.TrimSpace(l.Text()); link != "" {
				break
			}
		}
		if title == "" || link == "" {
			continue
		}
		articles = append(articles, ghostwriter.Article{
			Title:       title,
			URL:         link,
			Description: describe(childText(item, "description")),
		})
	}
	return articles
}

func parseAtom(doc *etree.Document) []ghostwriter.Article {
	var articles []ghostwriter.Article
	for _, entry := range doc.FindElements("//entry") {
		title := childText(entry, "title")
		link := ""
		if l := entry.FindElement("link[@rel='alternate']"); l != nil {
			link = strings.TrimSpace(l.SelectAttrValue("href", ""))
		}
		if link == "" {
			if l := entry.SelectElement("link"); l != nil {
				link = strings.TrimSpace(l.SelectAttrValue("href", ""))
			}
		}
		if title == "" || link == "" {
			continue
		}

		summary := childText(entry, "summary")
		if summary == "" {
			summary = childText(entry, "content")
		}
		articles = append(articles, ghostwriter.Article{
			Title:       title,
			URL:         link,
			Description: describe(summary),
		})
	}
	return articles
}

func childText(e *etree.Element, tag string) string {
	c := e.SelectElement(tag)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text())
}

func describe(s string) string {
	return ghostwriter.Truncate(goquery.StripHTML(s), ghostwriter.DescriptionLimit)
}
