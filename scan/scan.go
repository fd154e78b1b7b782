// Package scan orchestrates discovery: it turns blogs, newsletters and
// single articles into scored, deduplicated inspirations.
//
// Orchestrators never return bare errors. Every failure is reported in the
// result value with zeroed counts and an error description.
package scan

import (
	"context"
	"log/slog"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
)

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}

// loadInterests loads and parses the interest profile. A nil loader yields
// an empty keyword set.
func loadInterests(ctx context.Context, l ghostwriter.ProfileLoader) (ghostwriter.Interests, error) {
	if l == nil {
		return nil, nil
	}
	profile, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ghostwriter.ParseInterests(profile), nil
}

// knownURLs returns the URLs of every stored inspiration.
func knownURLs(ctx context.Context, s ghostwriter.InspirationService) (map[string]bool, error) {
	insps, err := s.FindInspirations(ctx, ghostwriter.InspirationFilter{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(insps))
	for _, i := range insps {
		seen[i.URL] = true
	}
	return seen, nil
}

// markScanned records the scan time on a source. Failures are logged only.
func markScanned(ctx context.Context, s ghostwriter.SourceService, id string, at time.Time, log *slog.Logger) {
	if _, err := s.UpdateSource(ctx, id, ghostwriter.SourceUpdate{LastScannedAt: &at}); err != nil {
		log.Warn("failed to update last scanned time", "source", id, "err", err)
	}
}
