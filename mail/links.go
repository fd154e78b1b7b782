package mail

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	ghostwriter "github.com/Molefas/ghost-writer"
)

const (
	minHrefLength = 10
	minLinkText   = 5
)

var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)unsubscribe`),
	regexp.MustCompile(`(?i)manage.preferences`),
	regexp.MustCompile(`(?i)email.preferences`),
	regexp.MustCompile(`(?i)view.in.browser`),
	regexp.MustCompile(`(?i)view.online`),
	regexp.MustCompile(`(?i)mailto:`),
	regexp.MustCompile(`^#`),
	regexp.MustCompile(`(?i)javascript:`),
}

// skipDomains are matched as substrings of the link's hostname.
var skipDomains = []string{
	"facebook.com",
	"twitter.com",
	"x.com",
	"instagram.com",
	"linkedin.com",
	"youtube.com",
	"tiktok.com",
	"pinterest.com",
	"reddit.com",
	// newsletter infrastructure
	"list-manage.com",
	"mailchimp.com",
	"campaign-archive.com",
	"sendgrid.net",
	"convertkit.com",
	"beehiiv.com",
}

// ExtractLinks returns the probable article links of an email's HTML body in
// document order. Links to social networks, newsletter infrastructure and
// housekeeping pages are dropped, as are anchors with little text. Each URL
// appears at most once; the first anchor for a URL decides whether it is kept.
func ExtractLinks(html string) []ghostwriter.Link {
	if html == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []ghostwriter.Link
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if len(href) < minHrefLength || skipHref(href) {
			return
		}

		if seen[href] {
			return
		}
		seen[href] = true

		text := strings.TrimSpace(sel.Text())
		if len([]rune(text)) < minLinkText {
			return
		}
		links = append(links, ghostwriter.Link{URL: href, Text: text})
	})
	return links
}

func skipHref(href string) bool {
	for _, re := range skipPatterns {
		if re.MatchString(href) {
			return true
		}
	}
	u, err := url.Parse(href)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return true
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range skipDomains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}
