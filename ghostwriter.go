// Package ghostwriter curates reading material for a content-creation workflow.
// It discovers articles from blogs and email newsletters, scores them against
// a free-text interest profile, deduplicates them by URL and records them as
// inspirations in an indexed key-value store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gmail/).
package ghostwriter
