package store_test

import (
	"context"
	"testing"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceService_CreateSource(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and creation time", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := store.NewSourceService(setupTestStore(t))
		src := &ghostwriter.Source{Kind: ghostwriter.SourceBlog, Name: "Blog", URL: "https://blog.example.com"}

		require.NoError(t, svc.CreateSource(ctx, src))

		assert.Regexp(t, `^src_`, src.ID)
		assert.False(t, src.CreatedAt.IsZero())
		assert.Nil(t, src.LastScannedAt)

		got, err := svc.FindSourceByID(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, src.URL, got.URL)
		assert.Equal(t, ghostwriter.SourceBlog, got.Kind)
	})

	t.Run("rejects invalid sources", func(t *testing.T) {
		t.Parallel()

		svc := store.NewSourceService(setupTestStore(t))

		err := svc.CreateSource(context.Background(), &ghostwriter.Source{Kind: ghostwriter.SourceNewsletter, Name: "N"})

		assert.Equal(t, ghostwriter.EINVALID, ghostwriter.ErrorCode(err))
	})

	t.Run("stores wire field names", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := setupTestStore(t)
		svc := store.NewSourceService(s)
		src := &ghostwriter.Source{Kind: ghostwriter.SourceNewsletter, Name: "N", Email: "n@e.com"}
		require.NoError(t, svc.CreateSource(ctx, src))

		data, err := s.Get(ctx, store.SourceKey(src.ID))

		require.NoError(t, err)
		assert.Contains(t, string(data), `"type":"newsletter"`)
		assert.Contains(t, string(data), `"lastScanned":null`)
		assert.Contains(t, string(data), `"addedAt"`)
	})
}

func TestSourceService_FindSources(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := store.NewSourceService(setupTestStore(t))
	blog := &ghostwriter.Source{Kind: ghostwriter.SourceBlog, Name: "B", URL: "https://b.example.com"}
	news := &ghostwriter.Source{Kind: ghostwriter.SourceNewsletter, Name: "N", Email: "n@e.com"}
	news2 := &ghostwriter.Source{Kind: ghostwriter.SourceNewsletter, Name: "N2", Email: "n2@e.com"}
	for _, s := range []*ghostwriter.Source{blog, news, news2} {
		require.NoError(t, svc.CreateSource(ctx, s))
	}

	all, err := svc.FindSources(ctx, ghostwriter.SourceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	kind := ghostwriter.SourceNewsletter
	newsletters, err := svc.FindSources(ctx, ghostwriter.SourceFilter{Kind: &kind})
	require.NoError(t, err)
	require.Len(t, newsletters, 2)
	assert.Equal(t, news.ID, newsletters[0].ID)

	byID, err := svc.FindSources(ctx, ghostwriter.SourceFilter{Kind: &kind, IDs: []string{news2.ID, blog.ID}})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, news2.ID, byID[0].ID)
}

func TestSourceService_UpdateSource(t *testing.T) {
	t.Parallel()

	t.Run("updates fields", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := store.NewSourceService(setupTestStore(t))
		src := &ghostwriter.Source{Kind: ghostwriter.SourceBlog, Name: "B", URL: "https://b.example.com"}
		require.NoError(t, svc.CreateSource(ctx, src))

		name := "Renamed"
		scanned := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		updated, err := svc.UpdateSource(ctx, src.ID, ghostwriter.SourceUpdate{Name: &name, LastScannedAt: &scanned})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		require.NotNil(t, updated.LastScannedAt)
		assert.True(t, scanned.Equal(*updated.LastScannedAt))

		got, err := svc.FindSourceByID(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()

		svc := store.NewSourceService(setupTestStore(t))

		_, err := svc.UpdateSource(context.Background(), "src_missing", ghostwriter.SourceUpdate{})

		assert.Equal(t, ghostwriter.ENOTFOUND, ghostwriter.ErrorCode(err))
	})
}

func TestSourceService_DeleteSource(t *testing.T) {
	t.Parallel()

	t.Run("removes record and index entry but keeps inspirations", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := setupTestStore(t)
		sources := store.NewSourceService(s)
		insps := store.NewInspirationService(s)
		src := &ghostwriter.Source{Kind: ghostwriter.SourceBlog, Name: "B", URL: "https://b.example.com"}
		require.NoError(t, sources.CreateSource(ctx, src))
		insp := &ghostwriter.Inspiration{SourceID: src.ID, Title: "T", URL: "https://b.example.com/t", Score: 5}
		require.NoError(t, insps.CreateInspiration(ctx, insp))

		require.NoError(t, sources.DeleteSource(ctx, src.ID))

		_, err := sources.FindSourceByID(ctx, src.ID)
		assert.Equal(t, ghostwriter.ENOTFOUND, ghostwriter.ErrorCode(err))
		all, err := sources.FindSources(ctx, ghostwriter.SourceFilter{})
		require.NoError(t, err)
		assert.Empty(t, all)
		_, err = insps.FindInspirationByID(ctx, insp.ID)
		assert.NoError(t, err)
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()

		err := store.NewSourceService(setupTestStore(t)).DeleteSource(context.Background(), "nope")

		assert.Equal(t, ghostwriter.ENOTFOUND, ghostwriter.ErrorCode(err))
	})
}
