package store

import (
	"context"
	"slices"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/google/uuid"
)

var _ ghostwriter.ContentService = (*ContentService)(nil)

// ContentService implements ghostwriter.ContentService.
type ContentService struct {
	store ghostwriter.Store
	now   func() time.Time
}

// NewContentService creates a new ContentService.
func NewContentService(s ghostwriter.Store) *ContentService {
	return &ContentService{store: s, now: time.Now}
}

// CreateContent stores a new draft. Status defaults to draft.
func (s *ContentService) CreateContent(ctx context.Context, content *ghostwriter.Content) error {
	if content.Status == "" {
		content.Status = ghostwriter.StatusDraft
	}
	if content.InspirationIDs == nil {
		content.InspirationIDs = []string{}
	}
	if err := content.Validate(); err != nil {
		return err
	}
	if content.ID == "" {
		content.ID = "content_" + uuid.New().String()
	}
	now := s.now().UTC()
	content.CreatedAt = now
	content.UpdatedAt = now

	if err := putRecord(ctx, s.store, ContentKey(content.ID), content); err != nil {
		return err
	}
	return AddToIndex(ctx, s.store, ContentIndexKey, content.ID)
}

// FindContentByID retrieves a content draft by ID.
func (s *ContentService) FindContentByID(ctx context.Context, id string) (*ghostwriter.Content, error) {
	content, err := GetByID[ghostwriter.Content](ctx, s.store, ContentKey(id))
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ghostwriter.Errorf(ghostwriter.ENOTFOUND, "content %s not found", id)
	}
	return content, nil
}

// FindContents returns drafts matching filter, in creation order.
func (s *ContentService) FindContents(ctx context.Context, filter ghostwriter.ContentFilter) ([]*ghostwriter.Content, error) {
	contents, err := GetAll[ghostwriter.Content](ctx, s.store, ContentIndexKey, ContentKey)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(contents, func(c *ghostwriter.Content) bool {
		return (filter.Kind != nil && c.Kind != *filter.Kind) ||
			(filter.Status != nil && c.Status != *filter.Status)
	}), nil
}

// UpdateContent applies upd and bumps UpdatedAt.
func (s *ContentService) UpdateContent(ctx context.Context, id string, upd ghostwriter.ContentUpdate) (*ghostwriter.Content, error) {
	content, err := s.FindContentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		content.Title = *upd.Title
	}
	if upd.Body != nil {
		content.Body = *upd.Body
	}
	if upd.Status != nil {
		content.Status = *upd.Status
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	content.UpdatedAt = s.now().UTC()

	if err := putRecord(ctx, s.store, ContentKey(id), content); err != nil {
		return nil, err
	}
	return content, nil
}

// DeleteContent removes a draft and its index entry.
func (s *ContentService) DeleteContent(ctx context.Context, id string) error {
	if _, err := s.FindContentByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, ContentKey(id)); err != nil {
		return err
	}
	return RemoveFromIndex(ctx, s.store, ContentIndexKey, id)
}
