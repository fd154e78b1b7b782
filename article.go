package ghostwriter

import "context"

// DescriptionLimit is the maximum length, in characters, of a candidate description.
const DescriptionLimit = 300

// Article is a candidate discovered on a source. It is transient: an
// orchestrator either turns it into an Inspiration or drops it as a duplicate.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ArticleDiscoverer discovers candidate articles on a blog.
type ArticleDiscoverer interface {
	// Discover returns the articles found from the blog root URL, preferring
	// the site's feed and falling back to HTML heuristics.
	// Returns EFETCH if the root page cannot be retrieved.
	Discover(ctx context.Context, blogURL string) ([]Article, error)
}

// FeedParser parses an RSS or Atom document into candidate articles.
type FeedParser interface {
	// ParseFeed returns the articles in the feed. Relative links are left as-is.
	ParseFeed(data string) ([]Article, error)
}

// BodyExtractor fetches an article and extracts its main readable text.
type BodyExtractor interface {
	// FetchBody returns the cleaned plain text of the article at url.
	// Returns EFETCH if the page cannot be retrieved.
	FetchBody(ctx context.Context, url string) (string, error)
}

// Truncate shortens s to at most n characters.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
