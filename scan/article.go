package scan

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
)

// ArticleResult reports the outcome of an article source scan.
type ArticleResult struct {
	SourceName  string                   `json:"sourceName"`
	Added       bool                     `json:"added"`
	Duplicate   bool                     `json:"duplicate"`
	Inspiration *ghostwriter.Inspiration `json:"inspiration,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// ArticleScanner turns a single-article source into an inspiration.
type ArticleScanner struct {
	Sources      ghostwriter.SourceService
	Inspirations ghostwriter.InspirationService
	Fetcher      ghostwriter.Fetcher
	Interests    ghostwriter.ProfileLoader

	// Extractors are tried in order; the first result with a title wins.
	Extractors []ghostwriter.Extractor

	Logger *slog.Logger
	Now    func() time.Time
}

// Scan loads the source by ID and scans it.
func (s *ArticleScanner) Scan(ctx context.Context, sourceID string) *ArticleResult {
	src, err := s.Sources.FindSourceByID(ctx, sourceID)
	if err != nil {
		return &ArticleResult{Error: errorText(err)}
	}
	return s.ScanSource(ctx, src)
}

// ScanSource fetches the article, extracts its title and excerpt, and
// records it unless its URL is already known.
func (s *ArticleScanner) ScanSource(ctx context.Context, src *ghostwriter.Source) *ArticleResult {
	log := logger(s.Logger)

	if src.Kind != ghostwriter.SourceArticle || !src.Scannable() {
		return &ArticleResult{
			SourceName: src.Name,
			Error:      errorText(ghostwriter.Errorf(ghostwriter.EINVALID, "source %s is not an article source with a URL", src.ID)),
		}
	}

	seen, err := knownURLs(ctx, s.Inspirations)
	if err != nil {
		return &ArticleResult{SourceName: src.Name, Error: "loading inspirations: " + errorText(err)}
	}
	if seen[src.URL] {
		markScanned(ctx, s.Sources, src.ID, clock(s.Now), log)
		return &ArticleResult{SourceName: src.Name, Duplicate: true}
	}

	html, err := s.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return &ArticleResult{SourceName: src.Name, Error: errorText(err)}
	}

	title, desc := s.extract(html, src, log)

	interests, err := loadInterests(ctx, s.Interests)
	if err != nil {
		return &ArticleResult{SourceName: src.Name, Error: "loading interests: " + errorText(err)}
	}

	insp := &ghostwriter.Inspiration{
		SourceID:     src.ID,
		Title:        title,
		Description:  desc,
		URL:          src.URL,
		Score:        interests.Score(title, desc),
		DiscoveredAt: clock(s.Now),
		Tags:         []string{},
	}
	if err := s.Inspirations.CreateInspiration(ctx, insp); err != nil {
		return &ArticleResult{SourceName: src.Name, Error: errorText(err)}
	}

	markScanned(ctx, s.Sources, src.ID, clock(s.Now), log)
	return &ArticleResult{SourceName: src.Name, Added: true, Inspiration: insp}
}

// extract returns the article title and description. The title falls back
// to the source name; the description falls back to the start of the text.
func (s *ArticleScanner) extract(html string, src *ghostwriter.Source, log *slog.Logger) (string, string) {
	for _, e := range s.Extractors {
		res, err := e.Extract(html, src.URL)
		if err != nil {
			log.Debug("extractor failed", "url", src.URL, "err", err)
			continue
		}
		title := strings.TrimSpace(res.Title)
		if title == "" {
			continue
		}
		desc := strings.TrimSpace(res.Description)
		if desc == "" {
			desc = strings.Join(strings.Fields(res.Text), " ")
		}
		return title, ghostwriter.Truncate(desc, ghostwriter.DescriptionLimit)
	}

	title := src.Name
	if title == "" {
		if u, err := url.Parse(src.URL); err == nil {
			title = u.Host + u.Path
		}
	}
	return title, ""
}
