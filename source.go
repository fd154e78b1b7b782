package ghostwriter

import (
	"context"
	"time"
)

// SourceKind identifies the kind of discovery origin.
type SourceKind string

// Supported source kinds.
const (
	SourceBlog       SourceKind = "blog"
	SourceArticle    SourceKind = "article"
	SourceNewsletter SourceKind = "newsletter"
)

// Valid reports whether k is a known source kind.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceBlog, SourceArticle, SourceNewsletter:
		return true
	}
	return false
}

// Source represents a configured origin that can be scanned for content.
type Source struct {
	ID            string     `json:"id"`
	Kind          SourceKind `json:"type"`
	URL           string     `json:"url,omitempty"`
	Email         string     `json:"email,omitempty"`
	Name          string     `json:"name"`
	CreatedAt     time.Time  `json:"addedAt"`
	LastScannedAt *time.Time `json:"lastScanned"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if !s.Kind.Valid() {
		return Errorf(EINVALID, "invalid source kind %q", s.Kind)
	}
	switch s.Kind {
	case SourceBlog, SourceArticle:
		if s.URL == "" {
			return Errorf(EINVALID, "%s source URL required", s.Kind)
		}
	case SourceNewsletter:
		if s.Email == "" {
			return Errorf(EINVALID, "newsletter source email required")
		}
	}
	return nil
}

// Scannable reports whether the source carries what a scan of its kind needs.
func (s *Source) Scannable() bool {
	switch s.Kind {
	case SourceBlog, SourceArticle:
		return s.URL != ""
	case SourceNewsletter:
		return s.Email != ""
	}
	return false
}

// SourceService represents a service for managing sources.
type SourceService interface {
	// CreateSource creates a new source and adds it to the source index.
	CreateSource(ctx context.Context, source *Source) error

	// FindSourceByID retrieves a source by ID.
	// Returns ENOTFOUND if source does not exist.
	FindSourceByID(ctx context.Context, id string) (*Source, error)

	// FindSources retrieves sources matching the filter.
	FindSources(ctx context.Context, filter SourceFilter) ([]*Source, error)

	// UpdateSource updates an existing source.
	// Returns ENOTFOUND if source does not exist.
	UpdateSource(ctx context.Context, id string, upd SourceUpdate) (*Source, error)

	// DeleteSource removes a source and drops it from the source index.
	// Inspirations discovered from the source are left in place.
	// Returns ENOTFOUND if source does not exist.
	DeleteSource(ctx context.Context, id string) error
}

// SourceFilter represents a filter for FindSources.
type SourceFilter struct {
	IDs  []string    `json:"ids"`
	Kind *SourceKind `json:"kind"`
}

// SourceUpdate represents fields that can be updated on a source.
type SourceUpdate struct {
	Name          *string    `json:"name"`
	URL           *string    `json:"url"`
	Email         *string    `json:"email"`
	LastScannedAt *time.Time `json:"lastScanned"`
}
