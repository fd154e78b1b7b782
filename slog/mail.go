package slog

import (
	"context"
	"log/slog"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var (
	_ ghostwriter.MailClient        = (*LoggingMailClient)(nil)
	_ ghostwriter.MailAuthenticator = (*LoggingMailAuthenticator)(nil)
)

// LoggingMailClient wraps a MailClient with logging. Searches log at info
// level; per-message calls log at debug level.
type LoggingMailClient struct {
	next   ghostwriter.MailClient
	logger *slog.Logger
}

// NewLoggingMailClient creates a new LoggingMailClient.
func NewLoggingMailClient(next ghostwriter.MailClient, logger *slog.Logger) *LoggingMailClient {
	return &LoggingMailClient{next: next, logger: logger}
}

func (c *LoggingMailClient) SearchMessages(ctx context.Context, query string, max int) (ids []string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("mail search",
			"query", query,
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SearchMessages(ctx, query, max)
}

func (c *LoggingMailClient) GetMessageMetadata(ctx context.Context, id string) (email *ghostwriter.Email, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("mail metadata",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.GetMessageMetadata(ctx, id)
}

func (c *LoggingMailClient) GetMessage(ctx context.Context, id string) (msg *ghostwriter.Message, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("mail message",
			"id", id,
			"hasPayload", msg != nil && msg.Payload != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.GetMessage(ctx, id)
}

// LoggingMailAuthenticator wraps a MailAuthenticator so that the clients
// it returns log their calls.
type LoggingMailAuthenticator struct {
	next   ghostwriter.MailAuthenticator
	logger *slog.Logger
}

// NewLoggingMailAuthenticator creates a new LoggingMailAuthenticator.
func NewLoggingMailAuthenticator(next ghostwriter.MailAuthenticator, logger *slog.Logger) *LoggingMailAuthenticator {
	return &LoggingMailAuthenticator{next: next, logger: logger}
}

// Client authenticates through the wrapped authenticator and wraps the
// resulting client.
func (a *LoggingMailAuthenticator) Client(ctx context.Context) (ghostwriter.MailClient, error) {
	client, err := a.next.Client(ctx)
	if err != nil {
		a.logger.Warn("mail authentication", "err", err)
		return nil, err
	}
	return NewLoggingMailClient(client, a.logger), nil
}
