package mock

import (
	"context"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.MailClient = (*MailClient)(nil)

// MailClient is a mock implementation of ghostwriter.MailClient.
type MailClient struct {
	SearchMessagesFn     func(ctx context.Context, query string, max int) ([]string, error)
	GetMessageMetadataFn func(ctx context.Context, id string) (*ghostwriter.Email, error)
	GetMessageFn         func(ctx context.Context, id string) (*ghostwriter.Message, error)
}

func (c *MailClient) SearchMessages(ctx context.Context, query string, max int) ([]string, error) {
	return c.SearchMessagesFn(ctx, query, max)
}

func (c *MailClient) GetMessageMetadata(ctx context.Context, id string) (*ghostwriter.Email, error) {
	return c.GetMessageMetadataFn(ctx, id)
}

func (c *MailClient) GetMessage(ctx context.Context, id string) (*ghostwriter.Message, error) {
	return c.GetMessageFn(ctx, id)
}

var _ ghostwriter.MailAuthenticator = (*MailAuthenticator)(nil)

// MailAuthenticator is a mock implementation of ghostwriter.MailAuthenticator.
type MailAuthenticator struct {
	ClientFn func(ctx context.Context) (ghostwriter.MailClient, error)
}

func (a *MailAuthenticator) Client(ctx context.Context) (ghostwriter.MailClient, error) {
	return a.ClientFn(ctx)
}

var _ ghostwriter.ProfileLoader = (*ProfileLoader)(nil)

// ProfileLoader is a mock implementation of ghostwriter.ProfileLoader.
type ProfileLoader struct {
	LoadFn func(ctx context.Context) (string, error)
}

func (l *ProfileLoader) Load(ctx context.Context) (string, error) {
	return l.LoadFn(ctx)
}
