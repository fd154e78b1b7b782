package scan

import (
	"context"
	"log/slog"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
)

// BlogResult reports the outcome of a blog scan.
type BlogResult struct {
	BlogName          string `json:"blogName"`
	TotalDiscovered   int    `json:"totalDiscovered"`
	Added             int    `json:"newInspirations"`
	DuplicatesSkipped int    `json:"duplicatesSkipped"`
	Failed            int    `json:"failed"`
	Error             string `json:"error,omitempty"`
}

// BlogScanner discovers articles on blog sources and records the new ones
// as inspirations.
type BlogScanner struct {
	Sources      ghostwriter.SourceService
	Inspirations ghostwriter.InspirationService
	Discoverer   ghostwriter.ArticleDiscoverer
	Interests    ghostwriter.ProfileLoader

	Logger *slog.Logger
	Now    func() time.Time
}

// Scan loads the source by ID and scans it.
func (s *BlogScanner) Scan(ctx context.Context, sourceID string) *BlogResult {
	src, err := s.Sources.FindSourceByID(ctx, sourceID)
	if err != nil {
		return &BlogResult{Error: ghostwriter.ErrorMessage(err)}
	}
	return s.ScanSource(ctx, src)
}

// ScanSource scans a blog source. Articles whose URL is already stored are
// skipped; each new article is scored and saved individually, and a failed
// save is counted without aborting the scan.
func (s *BlogScanner) ScanSource(ctx context.Context, src *ghostwriter.Source) *BlogResult {
	log := logger(s.Logger)

	if src.Kind != ghostwriter.SourceBlog || !src.Scannable() {
		return &BlogResult{
			BlogName: src.Name,
			Error:    errorText(ghostwriter.Errorf(ghostwriter.EINVALID, "source %s is not a blog source with a URL", src.ID)),
		}
	}

	articles, err := s.Discoverer.Discover(ctx, src.URL)
	if err != nil {
		return &BlogResult{BlogName: src.Name, Error: errorText(err)}
	}

	interests, err := loadInterests(ctx, s.Interests)
	if err != nil {
		return &BlogResult{BlogName: src.Name, Error: "loading interests: " + errorText(err)}
	}

	seen, err := knownURLs(ctx, s.Inspirations)
	if err != nil {
		return &BlogResult{BlogName: src.Name, Error: "loading inspirations: " + errorText(err)}
	}

	result := &BlogResult{BlogName: src.Name, TotalDiscovered: len(articles)}
	for _, a := range articles {
		if seen[a.URL] {
			continue
		}
		insp := &ghostwriter.Inspiration{
			SourceID:     src.ID,
			Title:        a.Title,
			Description:  a.Description,
			URL:          a.URL,
			Score:        interests.Score(a.Title, a.Description),
			DiscoveredAt: clock(s.Now),
			Tags:         []string{},
		}
		if err := s.Inspirations.CreateInspiration(ctx, insp); err != nil {
			log.Warn("failed to save inspiration", "source", src.ID, "url", a.URL, "err", err)
			result.Failed++
			continue
		}
		seen[a.URL] = true
		result.Added++
	}
	result.DuplicatesSkipped = result.TotalDiscovered - result.Added - result.Failed

	markScanned(ctx, s.Sources, src.ID, clock(s.Now), log)

	log.Info("blog scanned", "source", src.ID, "discovered", result.TotalDiscovered,
		"added", result.Added, "duplicates", result.DuplicatesSkipped, "failed", result.Failed)
	return result
}

// errorText describes err for a result payload. Application errors report
// their message; other errors report their full text.
func errorText(err error) string {
	if ghostwriter.ErrorCode(err) == ghostwriter.EINTERNAL {
		return err.Error()
	}
	return ghostwriter.ErrorMessage(err)
}
