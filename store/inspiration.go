package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/google/uuid"
)

var _ ghostwriter.InspirationService = (*InspirationService)(nil)

// InspirationService implements ghostwriter.InspirationService.
type InspirationService struct {
	store ghostwriter.Store
	now   func() time.Time
}

// NewInspirationService creates a new InspirationService.
func NewInspirationService(s ghostwriter.Store) *InspirationService {
	return &InspirationService{store: s, now: time.Now}
}

func (s *InspirationService) prepare(insp *ghostwriter.Inspiration) error {
	if insp.ID == "" {
		insp.ID = "insp_" + uuid.New().String()
	}
	if insp.DiscoveredAt.IsZero() {
		insp.DiscoveredAt = s.now().UTC()
	}
	if insp.Tags == nil {
		insp.Tags = []string{}
	}
	return insp.Validate()
}

// CreateInspiration stores one inspiration and adds it to the index.
func (s *InspirationService) CreateInspiration(ctx context.Context, insp *ghostwriter.Inspiration) error {
	if err := s.prepare(insp); err != nil {
		return err
	}
	if err := putRecord(ctx, s.store, InspirationKey(insp.ID), insp); err != nil {
		return err
	}
	return AddToIndex(ctx, s.store, InspirationIndexKey, insp.ID)
}

// CreateInspirations stores all records with one batch write, then appends
// their IDs to the index with one index write. Nothing is written if any
// inspiration is invalid.
func (s *InspirationService) CreateInspirations(ctx context.Context, insps []*ghostwriter.Inspiration) error {
	if len(insps) == 0 {
		return nil
	}

	entries := make(map[string][]byte, len(insps))
	ids := make([]string, 0, len(insps))
	for _, insp := range insps {
		if err := s.prepare(insp); err != nil {
			return err
		}
		data, err := marshal(insp)
		if err != nil {
			return err
		}
		entries[InspirationKey(insp.ID)] = data
		ids = append(ids, insp.ID)
	}

	if err := s.store.SetMany(ctx, entries); err != nil {
		return err
	}
	return AppendToIndex(ctx, s.store, InspirationIndexKey, ids)
}

// FindInspirationByID retrieves an inspiration by ID.
func (s *InspirationService) FindInspirationByID(ctx context.Context, id string) (*ghostwriter.Inspiration, error) {
	insp, err := GetByID[ghostwriter.Inspiration](ctx, s.store, InspirationKey(id))
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, ghostwriter.Errorf(ghostwriter.ENOTFOUND, "inspiration %s not found", id)
	}
	return insp, nil
}

// FindInspirations returns inspirations matching filter, highest score
// first and newest first among equal scores. An empty filter returns all
// inspirations in index order.
//
// Query matches title or description case-insensitively. Tags match when
// the inspiration carries any of them.
func (s *InspirationService) FindInspirations(ctx context.Context, filter ghostwriter.InspirationFilter) ([]*ghostwriter.Inspiration, error) {
	insps, err := GetAll[ghostwriter.Inspiration](ctx, s.store, InspirationIndexKey, InspirationKey)
	if err != nil {
		return nil, err
	}
	if isZeroFilter(filter) {
		return insps, nil
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	insps = slices.DeleteFunc(insps, func(i *ghostwriter.Inspiration) bool {
		if query != "" &&
			!strings.Contains(strings.ToLower(i.Title), query) &&
			!strings.Contains(strings.ToLower(i.Description), query) {
			return true
		}
		if len(filter.Tags) > 0 && !hasAnyTag(i.Tags, filter.Tags) {
			return true
		}
		if i.Score < filter.MinScore {
			return true
		}
		if filter.SourceID != nil && i.SourceID != *filter.SourceID {
			return true
		}
		if filter.Since != nil && i.DiscoveredAt.Before(*filter.Since) {
			return true
		}
		return false
	})

	slices.SortStableFunc(insps, func(a, b *ghostwriter.Inspiration) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return b.DiscoveredAt.Compare(a.DiscoveredAt)
	})

	if filter.Limit > 0 && len(insps) > filter.Limit {
		insps = insps[:filter.Limit]
	}
	return insps, nil
}

// UpdateInspiration replaces the tags of an inspiration.
func (s *InspirationService) UpdateInspiration(ctx context.Context, id string, upd ghostwriter.InspirationUpdate) (*ghostwriter.Inspiration, error) {
	insp, err := s.FindInspirationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Tags != nil {
		insp.Tags = upd.Tags
	}
	if err := putRecord(ctx, s.store, InspirationKey(id), insp); err != nil {
		return nil, err
	}
	return insp, nil
}

func isZeroFilter(f ghostwriter.InspirationFilter) bool {
	return f.Query == "" && len(f.Tags) == 0 && f.MinScore == 0 &&
		f.SourceID == nil && f.Since == nil && f.Limit == 0
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
