package mock

import (
	"context"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of ghostwriter.ContentService.
type ContentService struct {
	CreateContentFn   func(ctx context.Context, content *ghostwriter.Content) error
	FindContentByIDFn func(ctx context.Context, id string) (*ghostwriter.Content, error)
	FindContentsFn    func(ctx context.Context, filter ghostwriter.ContentFilter) ([]*ghostwriter.Content, error)
	UpdateContentFn   func(ctx context.Context, id string, upd ghostwriter.ContentUpdate) (*ghostwriter.Content, error)
	DeleteContentFn   func(ctx context.Context, id string) error
}

func (s *ContentService) CreateContent(ctx context.Context, content *ghostwriter.Content) error {
	return s.CreateContentFn(ctx, content)
}

func (s *ContentService) FindContentByID(ctx context.Context, id string) (*ghostwriter.Content, error) {
	return s.FindContentByIDFn(ctx, id)
}

func (s *ContentService) FindContents(ctx context.Context, filter ghostwriter.ContentFilter) ([]*ghostwriter.Content, error) {
	return s.FindContentsFn(ctx, filter)
}

func (s *ContentService) UpdateContent(ctx context.Context, id string, upd ghostwriter.ContentUpdate) (*ghostwriter.Content, error) {
	return s.UpdateContentFn(ctx, id, upd)
}

func (s *ContentService) DeleteContent(ctx context.Context, id string) error {
	return s.DeleteContentFn(ctx, id)
}
