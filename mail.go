package ghostwriter

import "context"

// MaxSearchResults is the server-side cap on messages returned by one search.
const MaxSearchResults = 50

// MessagePart is a node of a MIME message tree. Leaf parts carry
// base64url-encoded body data; multipart containers carry sub-parts.
// Single-part messages are a one-node tree.
type MessagePart struct {
	MimeType string
	Data     string
	Parts    []*MessagePart
}

// Message is a fully retrieved mail message.
type Message struct {
	ID      string
	Snippet string
	Payload *MessagePart
}

// Email is the metadata of a mail message returned by a search.
type Email struct {
	MessageID string `json:"messageId"`
	Subject   string `json:"subject"`
	From      string `json:"from"`
	Date      string `json:"date"`
	Snippet   string `json:"snippet"`
}

// MailContent holds the decoded bodies of a message.
type MailContent struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// Link is an outbound link extracted from an email body.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// MailClient is an already-authenticated mailbox API client.
type MailClient interface {
	// SearchMessages returns the IDs of messages matching query, at most max.
	SearchMessages(ctx context.Context, query string, max int) ([]string, error)

	// GetMessageMetadata retrieves the headers and snippet of a message.
	GetMessageMetadata(ctx context.Context, id string) (*Email, error)

	// GetMessage retrieves a message with its full payload.
	// The payload is nil when the message has no retrievable body.
	GetMessage(ctx context.Context, id string) (*Message, error)
}

// MailAuthenticator produces authenticated mail clients.
type MailAuthenticator interface {
	// Client returns a ready client. Returns EUNAUTHORIZED when no
	// credentials are stored or they cannot be refreshed.
	Client(ctx context.Context) (MailClient, error)
}

// ProfileLoader loads a plain-text profile document such as the interest
// or voice profile. A missing document yields an empty profile.
type ProfileLoader interface {
	Load(ctx context.Context) (string, error)
}
