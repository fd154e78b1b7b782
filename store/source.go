package store

import (
	"context"
	"slices"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/google/uuid"
)

var _ ghostwriter.SourceService = (*SourceService)(nil)

// SourceService implements ghostwriter.SourceService.
type SourceService struct {
	store ghostwriter.Store
	now   func() time.Time
}

// NewSourceService creates a new SourceService.
func NewSourceService(s ghostwriter.Store) *SourceService {
	return &SourceService{store: s, now: time.Now}
}

// CreateSource assigns an ID and creation time when unset, stores the
// source and adds it to the index.
func (s *SourceService) CreateSource(ctx context.Context, source *ghostwriter.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	if source.ID == "" {
		source.ID = "src_" + uuid.New().String()
	}
	if source.CreatedAt.IsZero() {
		source.CreatedAt = s.now().UTC()
	}

	if err := putRecord(ctx, s.store, SourceKey(source.ID), source); err != nil {
		return err
	}
	return AddToIndex(ctx, s.store, SourceIndexKey, source.ID)
}

// FindSourceByID retrieves a source by ID.
func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*ghostwriter.Source, error) {
	source, err := GetByID[ghostwriter.Source](ctx, s.store, SourceKey(id))
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ghostwriter.Errorf(ghostwriter.ENOTFOUND, "source %s not found", id)
	}
	return source, nil
}

// FindSources returns the indexed sources matching filter, in creation order.
func (s *SourceService) FindSources(ctx context.Context, filter ghostwriter.SourceFilter) ([]*ghostwriter.Source, error) {
	sources, err := GetAll[ghostwriter.Source](ctx, s.store, SourceIndexKey, SourceKey)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(sources, func(src *ghostwriter.Source) bool {
		if filter.Kind != nil && src.Kind != *filter.Kind {
			return true
		}
		if len(filter.IDs) > 0 && !slices.Contains(filter.IDs, src.ID) {
			return true
		}
		return false
	}), nil
}

// UpdateSource applies upd to an existing source.
func (s *SourceService) UpdateSource(ctx context.Context, id string, upd ghostwriter.SourceUpdate) (*ghostwriter.Source, error) {
	source, err := s.FindSourceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		source.Name = *upd.Name
	}
	if upd.URL != nil {
		source.URL = *upd.URL
	}
	if upd.Email != nil {
		source.Email = *upd.Email
	}
	if upd.LastScannedAt != nil {
		t := upd.LastScannedAt.UTC()
		source.LastScannedAt = &t
	}

	if err := source.Validate(); err != nil {
		return nil, err
	}
	if err := putRecord(ctx, s.store, SourceKey(id), source); err != nil {
		return nil, err
	}
	return source, nil
}

// DeleteSource removes the source record and its index entry.
func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	if _, err := s.FindSourceByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, SourceKey(id)); err != nil {
		return err
	}
	return RemoveFromIndex(ctx, s.store, SourceIndexKey, id)
}
