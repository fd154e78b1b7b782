package scan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/mock"
	"github.com/Molefas/ghost-writer/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failingTimes(n int, err error) (*mock.Fetcher, *int) {
	calls := 0
	return &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
		calls++
		if calls <= n {
			return "", err
		}
		return "<html>ok</html>", nil
	}}, &calls
}

func TestRetryFetcher_Fetch(t *testing.T) {
	t.Parallel()

	fetchErr := ghostwriter.Errorf(ghostwriter.EFETCH, "HTTP 503 for https://example.com")

	t.Run("returns first success without retrying", func(t *testing.T) {
		t.Parallel()

		inner, calls := failingTimes(0, nil)
		f := &scan.RetryFetcher{Fetcher: inner, Delays: []time.Duration{time.Millisecond}}

		body, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", body)
		assert.Equal(t, 1, *calls)
	})

	t.Run("retries fetch failures until success", func(t *testing.T) {
		t.Parallel()

		inner, calls := failingTimes(2, fetchErr)
		f := &scan.RetryFetcher{Fetcher: inner, Delays: []time.Duration{time.Millisecond, time.Millisecond}}

		body, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", body)
		assert.Equal(t, 3, *calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		inner, calls := failingTimes(10, fetchErr)
		f := &scan.RetryFetcher{Fetcher: inner, Delays: []time.Duration{time.Millisecond, time.Millisecond}}

		_, err := f.Fetch(context.Background(), "https://example.com")

		assert.Equal(t, ghostwriter.EFETCH, ghostwriter.ErrorCode(err))
		assert.Equal(t, 3, *calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		t.Parallel()

		inner, calls := failingTimes(10, errors.New("boom"))
		f := &scan.RetryFetcher{Fetcher: inner, Delays: []time.Duration{time.Millisecond}}

		_, err := f.Fetch(context.Background(), "https://example.com")

		assert.EqualError(t, err, "boom")
		assert.Equal(t, 1, *calls)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		inner, _ := failingTimes(10, fetchErr)
		f := &scan.RetryFetcher{Fetcher: inner, Delays: []time.Duration{time.Hour}}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := f.Fetch(ctx, "https://example.com")

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("default delays are one and two seconds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, scan.DefaultRetryDelays())
	})
}
