package ghostwriter

import (
	"context"
	"time"
)

// Score bounds for an inspiration's relevance.
const (
	MinScore     = 1
	MaxScore     = 10
	DefaultScore = 5
)

// Inspiration represents a scored article discovered from a source.
// The URL is the dedup key across the whole inspiration collection.
type Inspiration struct {
	ID           string    `json:"id"`
	SourceID     string    `json:"sourceId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	URL          string    `json:"url"`
	Score        int       `json:"score"`
	DiscoveredAt time.Time `json:"addedAt"`
	Tags         []string  `json:"tags"`
}

// Validate returns an error if the inspiration contains invalid fields.
func (i *Inspiration) Validate() error {
	if i.SourceID == "" {
		return Errorf(EINVALID, "inspiration source ID required")
	}
	if i.URL == "" {
		return Errorf(EINVALID, "inspiration URL required")
	}
	if i.Title == "" {
		return Errorf(EINVALID, "inspiration title required")
	}
	if i.Score < MinScore || i.Score > MaxScore {
		return Errorf(EINVALID, "inspiration score %d out of range", i.Score)
	}
	return nil
}

// InspirationService represents a service for managing inspirations.
type InspirationService interface {
	// CreateInspiration stores one inspiration and appends it to the index.
	CreateInspiration(ctx context.Context, insp *Inspiration) error

	// CreateInspirations stores many inspirations in one batch write and
	// appends all of their IDs to the index with a single index write.
	CreateInspirations(ctx context.Context, insps []*Inspiration) error

	// FindInspirationByID retrieves an inspiration by ID.
	// Returns ENOTFOUND if inspiration does not exist.
	FindInspirationByID(ctx context.Context, id string) (*Inspiration, error)

	// FindInspirations retrieves inspirations matching the filter.
	FindInspirations(ctx context.Context, filter InspirationFilter) ([]*Inspiration, error)

	// UpdateInspiration updates the mutable fields of an inspiration.
	// Returns ENOTFOUND if inspiration does not exist.
	UpdateInspiration(ctx context.Context, id string, upd InspirationUpdate) (*Inspiration, error)
}

// InspirationFilter represents a filter for FindInspirations.
type InspirationFilter struct {
	Query    string     `json:"query"`
	Tags     []string   `json:"tags"`
	MinScore int        `json:"minScore"`
	SourceID *string    `json:"sourceId"`
	Since    *time.Time `json:"since"`

	Limit int `json:"limit"`
}

// InspirationUpdate represents fields that can be updated on an inspiration.
type InspirationUpdate struct {
	Tags []string `json:"tags"`
}

// InspirationContent holds the lazily fetched body text of an inspiration.
type InspirationContent struct {
	InspirationID string `json:"inspirationId"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Content       string `json:"content"`
	Error         string `json:"error,omitempty"`
}
