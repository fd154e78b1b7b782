package store_test

import (
	"context"
	"sync"
	"testing"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/mock"
	"github.com/Molefas/ghost-writer/sqlite"
	"github.com/stretchr/testify/require"
)

// setupTestStore returns a key-value store over an in-memory database.
func setupTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return sqlite.NewStore(db)
}

// countingStore wraps s and counts writes per key.
func countingStore(s ghostwriter.Store) (*mock.Store, func(key string) int) {
	var mu sync.Mutex
	writes := make(map[string]int)
	m := &mock.Store{
		GetFn:     s.Get,
		GetManyFn: s.GetMany,
		DeleteFn:  s.Delete,
		SetFn: func(ctx context.Context, key string, value []byte) error {
			mu.Lock()
			writes[key]++
			mu.Unlock()
			return s.Set(ctx, key, value)
		},
		SetManyFn: func(ctx context.Context, entries map[string][]byte) error {
			mu.Lock()
			for k := range entries {
				writes[k]++
			}
			mu.Unlock()
			return s.SetMany(ctx, entries)
		},
	}
	return m, func(key string) int {
		mu.Lock()
		defer mu.Unlock()
		return writes[key]
	}
}
