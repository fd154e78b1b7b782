package scan

import (
	"context"
	"log/slog"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

var _ ghostwriter.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with backoff. Only EFETCH failures
// are retried; other errors are returned immediately.
type RetryFetcher struct {
	Fetcher ghostwriter.Fetcher

	// Delays between attempts. Len(Delays)+1 attempts are made.
	Delays []time.Duration

	Logger *slog.Logger
}

// Fetch fetches url, retrying after each delay while attempts remain.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := f.Fetcher.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ghostwriter.ErrorCode(err) != ghostwriter.EFETCH || attempt >= maxAttempts-1 {
			break
		}

		logger(f.Logger).Debug("retrying fetch", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.Delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the underlying fetcher.
func (f *RetryFetcher) Close() error {
	return f.Fetcher.Close()
}
