package store_test

import (
	"context"
	"testing"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService(t *testing.T) {
	t.Parallel()

	t.Run("creates draft by default", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := store.NewContentService(setupTestStore(t))
		c := &ghostwriter.Content{Kind: ghostwriter.ContentLinkedIn, Title: "Post"}

		require.NoError(t, svc.CreateContent(ctx, c))

		assert.Regexp(t, `^content_`, c.ID)
		assert.Equal(t, ghostwriter.StatusDraft, c.Status)
		got, err := svc.FindContentByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Post", got.Title)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()

		err := store.NewContentService(setupTestStore(t)).CreateContent(context.Background(),
			&ghostwriter.Content{Kind: "tweet", Title: "x"})

		assert.Equal(t, ghostwriter.EINVALID, ghostwriter.ErrorCode(err))
	})

	t.Run("filters, updates and deletes", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := store.NewContentService(setupTestStore(t))
		a := &ghostwriter.Content{Kind: ghostwriter.ContentArticle, Title: "A"}
		x := &ghostwriter.Content{Kind: ghostwriter.ContentXPost, Title: "X"}
		require.NoError(t, svc.CreateContent(ctx, a))
		require.NoError(t, svc.CreateContent(ctx, x))

		done := ghostwriter.StatusDone
		updated, err := svc.UpdateContent(ctx, x.ID, ghostwriter.ContentUpdate{Status: &done})
		require.NoError(t, err)
		assert.Equal(t, ghostwriter.StatusDone, updated.Status)
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

		got, err := svc.FindContents(ctx, ghostwriter.ContentFilter{Status: &done})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, x.ID, got[0].ID)

		kind := ghostwriter.ContentArticle
		got, err = svc.FindContents(ctx, ghostwriter.ContentFilter{Kind: &kind})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)

		require.NoError(t, svc.DeleteContent(ctx, a.ID))
		_, err = svc.FindContentByID(ctx, a.ID)
		assert.Equal(t, ghostwriter.ENOTFOUND, ghostwriter.ErrorCode(err))
		all, err := svc.FindContents(ctx, ghostwriter.ContentFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
