// Package gmail implements ghostwriter.MailClient and
// ghostwriter.MailAuthenticator with the Gmail API.
package gmail

import (
	"context"
	"errors"
	"net/http"

	ghostwriter "github.com/Molefas/ghost-writer"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

const (
	userID = "me"

	noSubject = "(no subject)"
)

var _ ghostwriter.MailClient = (*Client)(nil)

// Client is a read-only Gmail API client for the authenticated user.
type Client struct {
	svc *gmailapi.Service
}

// NewClient wraps an authenticated Gmail service.
func NewClient(svc *gmailapi.Service) *Client {
	return &Client{svc: svc}
}

// SearchMessages returns the IDs of messages matching query.
func (c *Client) SearchMessages(ctx context.Context, query string, max int) ([]string, error) {
	resp, err := c.svc.Users.Messages.List(userID).Q(query).MaxResults(int64(max)).Context(ctx).Do()
	if err != nil {
		return nil, apiError(err, "search messages")
	}
	ids := make([]string, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		if m.Id != "" {
			ids = append(ids, m.Id)
		}
	}
	return ids, nil
}

// GetMessageMetadata returns the Subject, From and Date headers and the
// snippet of a message. A missing subject reads "(no subject)"; a missing
// sender is left empty.
func (c *Client) GetMessageMetadata(ctx context.Context, id string) (*ghostwriter.Email, error) {
	msg, err := c.svc.Users.Messages.Get(userID, id).
		Format("metadata").
		MetadataHeaders("Subject", "From", "Date").
		Context(ctx).Do()
	if err != nil {
		return nil, apiError(err, "get message "+id)
	}

	email := &ghostwriter.Email{
		MessageID: id,
		Subject:   noSubject,
		Snippet:   msg.Snippet,
	}
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "Subject":
				email.Subject = h.Value
			case "From":
				email.From = h.Value
			case "Date":
				email.Date = h.Value
			}
		}
	}
	return email, nil
}

// GetMessage returns a message with its full MIME tree.
func (c *Client) GetMessage(ctx context.Context, id string) (*ghostwriter.Message, error) {
	msg, err := c.svc.Users.Messages.Get(userID, id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, apiError(err, "get message "+id)
	}
	return &ghostwriter.Message{
		ID:      msg.Id,
		Snippet: msg.Snippet,
		Payload: convertPart(msg.Payload),
	}, nil
}

func convertPart(p *gmailapi.MessagePart) *ghostwriter.MessagePart {
	if p == nil {
		return nil
	}
	part := &ghostwriter.MessagePart{MimeType: p.MimeType}
	if p.Body != nil {
		part.Data = p.Body.Data
	}
	for _, child := range p.Parts {
		part.Parts = append(part.Parts, convertPart(child))
	}
	return part
}

// apiError maps Gmail API failures to application error codes.
func apiError(err error, op string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ghostwriter.Errorf(ghostwriter.EUNAUTHORIZED, "%s: %s", op, gerr.Message)
		case http.StatusNotFound:
			return ghostwriter.Errorf(ghostwriter.ENOTFOUND, "%s: %s", op, gerr.Message)
		}
	}
	return ghostwriter.Errorf(ghostwriter.EFETCH, "%s: %v", op, err)
}
