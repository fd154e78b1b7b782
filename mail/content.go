// Package mail implements mailbox-agnostic newsletter processing: message
// body decoding, article link extraction and sender search. It operates on
// any ghostwriter.MailClient.
package mail

import (
	"context"
	"encoding/base64"
	"strings"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/goquery"
)

// FetchContent retrieves a message and decodes its HTML and plain-text bodies.
// Parts of the same type are concatenated in depth-first order. When only
// HTML is present the text is derived from it.
// Returns ENOTFOUND if the message has no payload.
func FetchContent(ctx context.Context, client ghostwriter.MailClient, messageID string) (*ghostwriter.MailContent, error) {
	msg, err := client.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg == nil || msg.Payload == nil {
		return nil, ghostwriter.Errorf(ghostwriter.ENOTFOUND, "message %s has no payload; it may be deleted or inaccessible", messageID)
	}
	return DecodeContent(msg.Payload), nil
}

// DecodeContent decodes the bodies of a message part tree.
func DecodeContent(root *ghostwriter.MessagePart) *ghostwriter.MailContent {
	var html, text strings.Builder
	walk(root, func(p *ghostwriter.MessagePart) {
		if p.Data == "" {
			return
		}
		switch p.MimeType {
		case "text/html":
			html.WriteString(decodeBase64URL(p.Data))
		case "text/plain":
			text.WriteString(decodeBase64URL(p.Data))
		}
	})

	content := &ghostwriter.MailContent{HTML: html.String(), Text: text.String()}
	if content.HTML != "" && content.Text == "" {
		content.Text = goquery.HTMLToText(content.HTML)
	}
	return content
}

func walk(p *ghostwriter.MessagePart, fn func(*ghostwriter.MessagePart)) {
	if p == nil {
		return
	}
	fn(p)
	for _, child := range p.Parts {
		walk(child, fn)
	}
}

// decodeBase64URL decodes base64url data with or without padding. Invalid
// input decodes to as much as could be read.
func decodeBase64URL(data string) string {
	s := strings.NewReplacer("-", "+", "_", "/").Replace(strings.TrimSpace(data))
	s = strings.TrimRight(s, "=")
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		// Decode up to the corrupt byte.
		if ce, ok := err.(base64.CorruptInputError); ok {
			b, _ = base64.RawStdEncoding.DecodeString(s[:int(ce)/4*4])
		}
	}
	return string(b)
}
