// Package goquery implements HTML processing with the goquery library:
// blog article discovery, article body extraction and HTML-to-text helpers.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// StripHTML returns the trimmed text content of an HTML fragment.
// Input that is not HTML is returned trimmed.
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}

// CleanText collapses runs of whitespace to single spaces and trims the result.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// HTMLToText extracts the readable text of an HTML document with
// whitespace collapsed.
func HTMLToText(html string) string {
	return CleanText(StripHTML(html))
}

// ResolveURL resolves href against base. Returns false if href cannot be parsed.
func ResolveURL(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}

// isSameHost reports whether rawURL has the same hostname as base.
// Hostnames compare case-insensitively; ports are ignored and subdomains
// are considered different hosts.
func isSameHost(base *url.URL, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), base.Hostname())
}
