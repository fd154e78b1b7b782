package scan_test

import (
	"context"
	"sync"
	"testing"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/mock"
	"github.com/Molefas/ghost-writer/sqlite"
	"github.com/Molefas/ghost-writer/store"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func now() time.Time { return fixedNow }

// env wires the store services over an in-memory database and counts
// writes per key.
type env struct {
	sources      *store.SourceService
	inspirations *store.InspirationService
	writes       func(key string) int
}

func setupEnv(t *testing.T) *env {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	kv := sqlite.NewStore(db)

	var mu sync.Mutex
	writes := make(map[string]int)
	counted := &mock.Store{
		GetFn:     kv.Get,
		GetManyFn: kv.GetMany,
		DeleteFn:  kv.Delete,
		SetFn: func(ctx context.Context, key string, value []byte) error {
			mu.Lock()
			writes[key]++
			mu.Unlock()
			return kv.Set(ctx, key, value)
		},
		SetManyFn: func(ctx context.Context, entries map[string][]byte) error {
			mu.Lock()
			for k := range entries {
				writes[k]++
			}
			mu.Unlock()
			return kv.SetMany(ctx, entries)
		},
	}

	return &env{
		sources:      store.NewSourceService(counted),
		inspirations: store.NewInspirationService(counted),
		writes: func(key string) int {
			mu.Lock()
			defer mu.Unlock()
			return writes[key]
		},
	}
}

func (e *env) addSource(t *testing.T, src *ghostwriter.Source) *ghostwriter.Source {
	t.Helper()
	require.NoError(t, e.sources.CreateSource(context.Background(), src))
	return src
}

func (e *env) allInspirations(t *testing.T) []*ghostwriter.Inspiration {
	t.Helper()
	insps, err := e.inspirations.FindInspirations(context.Background(), ghostwriter.InspirationFilter{})
	require.NoError(t, err)
	return insps
}

func profile(text string) *mock.ProfileLoader {
	return &mock.ProfileLoader{LoadFn: func(context.Context) (string, error) { return text, nil }}
}
