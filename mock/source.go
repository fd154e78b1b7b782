package mock

import (
	"context"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.SourceService = (*SourceService)(nil)

// SourceService is a mock implementation of ghostwriter.SourceService.
type SourceService struct {
	CreateSourceFn   func(ctx context.Context, source *ghostwriter.Source) error
	FindSourceByIDFn func(ctx context.Context, id string) (*ghostwriter.Source, error)
	FindSourcesFn    func(ctx context.Context, filter ghostwriter.SourceFilter) ([]*ghostwriter.Source, error)
	UpdateSourceFn   func(ctx context.Context, id string, upd ghostwriter.SourceUpdate) (*ghostwriter.Source, error)
	DeleteSourceFn   func(ctx context.Context, id string) error
}

func (s *SourceService) CreateSource(ctx context.Context, source *ghostwriter.Source) error {
	return s.CreateSourceFn(ctx, source)
}

func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*ghostwriter.Source, error) {
	return s.FindSourceByIDFn(ctx, id)
}

func (s *SourceService) FindSources(ctx context.Context, filter ghostwriter.SourceFilter) ([]*ghostwriter.Source, error) {
	return s.FindSourcesFn(ctx, filter)
}

func (s *SourceService) UpdateSource(ctx context.Context, id string, upd ghostwriter.SourceUpdate) (*ghostwriter.Source, error) {
	return s.UpdateSourceFn(ctx, id, upd)
}

func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	return s.DeleteSourceFn(ctx, id)
}
