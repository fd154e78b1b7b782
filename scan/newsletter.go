package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/mail"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxEmails is the per-source email cap when none is requested.
	DefaultMaxEmails = 5

	// contentBatchSize bounds concurrent message content fetches.
	contentBatchSize = 3
)

// NewsletterRequest selects what a newsletter scan processes.
type NewsletterRequest struct {
	// SourceIDs restricts the scan to these sources. Empty means all
	// newsletter sources with an email address.
	SourceIDs []string

	// MaxEmails caps the emails processed per source. Defaults to DefaultMaxEmails.
	MaxEmails int
}

// FailedSource records a source whose processing failed.
type FailedSource struct {
	SourceID string `json:"sourceId"`
	Name     string `json:"name"`
	Error    string `json:"error"`
}

// NewsletterResult reports the outcome of a newsletter scan.
type NewsletterResult struct {
	EmailCount int `json:"emailCount"`

	// SenderCount is the number of newsletter sources the scan resolved,
	// including those listed in FailedSources.
	SenderCount       int            `json:"senderCount"`
	NewInspirations   int            `json:"newInspirations"`
	DuplicatesSkipped int            `json:"duplicatesSkipped"`
	FailedSources     []FailedSource `json:"failedSources,omitempty"`
	Error             string         `json:"error,omitempty"`
}

// NewsletterScanner extracts article links from newsletter emails and
// records the new ones as inspirations. New inspirations are saved with a
// single batch write at the end of the run.
type NewsletterScanner struct {
	Sources      ghostwriter.SourceService
	Inspirations ghostwriter.InspirationService
	Auth         ghostwriter.MailAuthenticator
	Interests    ghostwriter.ProfileLoader

	Logger *slog.Logger
	Now    func() time.Time
}

// Scan processes the requested newsletter sources. A failure of one source
// is recorded in FailedSources and does not stop the others.
func (s *NewsletterScanner) Scan(ctx context.Context, req NewsletterRequest) *NewsletterResult {
	log := logger(s.Logger)

	sources, err := s.resolveSources(ctx, req.SourceIDs)
	if err != nil {
		return &NewsletterResult{Error: "loading sources: " + errorText(err)}
	}
	if len(sources) == 0 {
		return &NewsletterResult{Error: "no newsletter sources found; add one with an email address first"}
	}

	client, err := s.Auth.Client(ctx)
	if err != nil {
		return &NewsletterResult{Error: "mail authentication failed: " + errorText(err)}
	}

	interests, err := loadInterests(ctx, s.Interests)
	if err != nil {
		return &NewsletterResult{Error: "loading interests: " + errorText(err)}
	}

	seen, err := knownURLs(ctx, s.Inspirations)
	if err != nil {
		return &NewsletterResult{Error: "loading inspirations: " + errorText(err)}
	}

	maxEmails := req.MaxEmails
	if maxEmails <= 0 {
		maxEmails = DefaultMaxEmails
	}

	result := &NewsletterResult{SenderCount: len(sources)}
	var staged []*ghostwriter.Inspiration
	for _, src := range sources {
		stats, insps, err := s.scanSource(ctx, client, src, maxEmails, interests, seen, log)
		if err != nil {
			log.Warn("newsletter source failed", "source", src.ID, "err", err)
			result.FailedSources = append(result.FailedSources, FailedSource{
				SourceID: src.ID,
				Name:     src.Name,
				Error:    errorText(err),
			})
			continue
		}
		result.EmailCount += stats.emails
		result.DuplicatesSkipped += stats.duplicates
		staged = append(staged, insps...)

		markScanned(ctx, s.Sources, src.ID, clock(s.Now), log)
	}

	if err := s.Inspirations.CreateInspirations(ctx, staged); err != nil {
		return &NewsletterResult{
			FailedSources: result.FailedSources,
			Error:         fmt.Sprintf("Found %d new articles but failed to save them: %s", len(staged), errorText(err)),
		}
	}
	result.NewInspirations = len(staged)

	log.Info("newsletters scanned", "sources", len(sources), "emails", result.EmailCount,
		"added", result.NewInspirations, "duplicates", result.DuplicatesSkipped,
		"failed", len(result.FailedSources))
	return result
}

func (s *NewsletterScanner) resolveSources(ctx context.Context, ids []string) ([]*ghostwriter.Source, error) {
	kind := ghostwriter.SourceNewsletter
	sources, err := s.Sources.FindSources(ctx, ghostwriter.SourceFilter{IDs: ids, Kind: &kind})
	if err != nil {
		return nil, err
	}
	var out []*ghostwriter.Source
	for _, src := range sources {
		if src.Scannable() {
			out = append(out, src)
		}
	}
	return out, nil
}

type sourceStats struct {
	emails     int
	duplicates int
}

type fetched struct {
	email   *ghostwriter.Email
	content *ghostwriter.MailContent
	err     error
}

// scanSource searches the source's sender and stages inspirations for new
// links. Message content is fetched in fixed batches; each batch completes
// before its results are processed and the next batch starts, so seen is
// only touched by this goroutine.
func (s *NewsletterScanner) scanSource(
	ctx context.Context,
	client ghostwriter.MailClient,
	src *ghostwriter.Source,
	maxEmails int,
	interests ghostwriter.Interests,
	seen map[string]bool,
	log *slog.Logger,
) (sourceStats, []*ghostwriter.Inspiration, error) {
	var stats sourceStats

	emails, err := mail.Search(ctx, client, src.Email, maxEmails)
	if err != nil {
		return stats, nil, fmt.Errorf("searching %s: %w", src.Email, err)
	}
	stats.emails = len(emails)

	var staged []*ghostwriter.Inspiration
	for start := 0; start < len(emails); start += contentBatchSize {
		batch := emails[start:min(start+contentBatchSize, len(emails))]
		results := make([]fetched, len(batch))

		var g errgroup.Group
		for i, e := range batch {
			g.Go(func() error {
				content, err := mail.FetchContent(ctx, client, e.MessageID)
				results[i] = fetched{email: e, content: content, err: err}
				return nil
			})
		}
		_ = g.Wait()

		for _, r := range results {
			if r.err != nil {
				log.Warn("skipping message", "source", src.ID, "message", r.email.MessageID, "err", r.err)
				continue
			}
			for _, link := range mail.ExtractLinks(r.content.HTML) {
				if seen[link.URL] {
					stats.duplicates++
					continue
				}
				seen[link.URL] = true
				desc := r.email.Snippet
				staged = append(staged, &ghostwriter.Inspiration{
					SourceID:     src.ID,
					Title:        link.Text,
					Description:  desc,
					URL:          link.URL,
					Score:        interests.Score(link.Text, desc),
					DiscoveredAt: clock(s.Now),
					Tags:         []string{},
				})
			}
		}
	}
	return stats, staged, nil
}
