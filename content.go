package ghostwriter

import (
	"context"
	"time"
)

// ContentKind identifies the format of a content draft.
type ContentKind string

// Supported content kinds.
const (
	ContentArticle  ContentKind = "article"
	ContentLinkedIn ContentKind = "linkedin"
	ContentXPost    ContentKind = "x_post"
)

// ContentStatus is the lifecycle state of a content draft.
type ContentStatus string

// Content statuses.
const (
	StatusDraft ContentStatus = "draft"
	StatusDone  ContentStatus = "done"
)

// Content represents a piece of drafted writing built from inspirations.
type Content struct {
	ID             string        `json:"id"`
	Kind           ContentKind   `json:"type"`
	Title          string        `json:"title"`
	Body           string        `json:"body"`
	InspirationIDs []string      `json:"inspirationIds"`
	Status         ContentStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// Validate returns an error if the content contains invalid fields.
func (c *Content) Validate() error {
	switch c.Kind {
	case ContentArticle, ContentLinkedIn, ContentXPost:
	default:
		return Errorf(EINVALID, "invalid content kind %q", c.Kind)
	}
	if c.Title == "" {
		return Errorf(EINVALID, "content title required")
	}
	switch c.Status {
	case StatusDraft, StatusDone:
	default:
		return Errorf(EINVALID, "invalid content status %q", c.Status)
	}
	return nil
}

// ContentService represents a service for managing content drafts.
type ContentService interface {
	CreateContent(ctx context.Context, content *Content) error
	FindContentByID(ctx context.Context, id string) (*Content, error)
	FindContents(ctx context.Context, filter ContentFilter) ([]*Content, error)
	UpdateContent(ctx context.Context, id string, upd ContentUpdate) (*Content, error)
	DeleteContent(ctx context.Context, id string) error
}

// ContentFilter represents a filter for FindContents.
type ContentFilter struct {
	Kind   *ContentKind   `json:"kind"`
	Status *ContentStatus `json:"status"`
}

// ContentUpdate represents fields that can be updated on a content draft.
type ContentUpdate struct {
	Title  *string        `json:"title"`
	Body   *string        `json:"body"`
	Status *ContentStatus `json:"status"`
}
