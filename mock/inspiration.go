package mock

import (
	"context"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.InspirationService = (*InspirationService)(nil)

// InspirationService is a mock implementation of ghostwriter.InspirationService.
type InspirationService struct {
	CreateInspirationFn   func(ctx context.Context, insp *ghostwriter.Inspiration) error
	CreateInspirationsFn  func(ctx context.Context, insps []*ghostwriter.Inspiration) error
	FindInspirationByIDFn func(ctx context.Context, id string) (*ghostwriter.Inspiration, error)
	FindInspirationsFn    func(ctx context.Context, filter ghostwriter.InspirationFilter) ([]*ghostwriter.Inspiration, error)
	UpdateInspirationFn   func(ctx context.Context, id string, upd ghostwriter.InspirationUpdate) (*ghostwriter.Inspiration, error)
}

func (s *InspirationService) CreateInspiration(ctx context.Context, insp *ghostwriter.Inspiration) error {
	return s.CreateInspirationFn(ctx, insp)
}

func (s *InspirationService) CreateInspirations(ctx context.Context, insps []*ghostwriter.Inspiration) error {
	return s.CreateInspirationsFn(ctx, insps)
}

func (s *InspirationService) FindInspirationByID(ctx context.Context, id string) (*ghostwriter.Inspiration, error) {
	return s.FindInspirationByIDFn(ctx, id)
}

func (s *InspirationService) FindInspirations(ctx context.Context, filter ghostwriter.InspirationFilter) ([]*ghostwriter.Inspiration, error) {
	return s.FindInspirationsFn(ctx, filter)
}

func (s *InspirationService) UpdateInspiration(ctx context.Context, id string, upd ghostwriter.InspirationUpdate) (*ghostwriter.Inspiration, error) {
	return s.UpdateInspirationFn(ctx, id, upd)
}
