// Package store implements the ghostwriter domain services on top of a
// ghostwriter.Store key-value primitive. Each record lives under its own
// key and each collection keeps an ordered index key listing record IDs.
package store

// Index keys listing the IDs of each collection in insertion order.
const (
	SourceIndexKey      = "index:sources"
	InspirationIndexKey = "index:inspirations"
	ContentIndexKey     = "index:content"
)

// GmailTokensKey holds the stored mailbox OAuth2 tokens.
const GmailTokensKey = "gmail:tokens"

// SourceKey returns the record key of a source.
func SourceKey(id string) string { return "source:" + id }

// InspirationKey returns the record key of an inspiration.
func InspirationKey(id string) string { return "insp:" + id }

// ContentKey returns the record key of a content draft.
func ContentKey(id string) string { return "content:" + id }
