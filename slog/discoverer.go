package slog

import (
	"context"
	"log/slog"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.ArticleDiscoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps an ArticleDiscoverer with logging.
type LoggingDiscoverer struct {
	next   ghostwriter.ArticleDiscoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next ghostwriter.ArticleDiscoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the result count.
func (d *LoggingDiscoverer) Discover(ctx context.Context, blogURL string) (articles []ghostwriter.Article, err error) {
	defer func(begin time.Time) {
		d.logger.Info("article discovery",
			"url", blogURL,
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, blogURL)
}
