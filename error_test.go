package ghostwriter_test

import (
	"fmt"
	"testing"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ghostwriter.Errorf(ghostwriter.ENOTFOUND, "source %q not found", "src_1")

	assert.Equal(t, ghostwriter.ENOTFOUND, ghostwriter.ErrorCode(err))
	assert.Equal(t, `source "src_1" not found`, ghostwriter.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error has no code", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ghostwriter.ErrorCode(nil))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("scanning: %w", ghostwriter.Errorf(ghostwriter.EFETCH, "HTTP 503 for https://example.com"))

		assert.Equal(t, ghostwriter.EFETCH, ghostwriter.ErrorCode(err))
		assert.Equal(t, "HTTP 503 for https://example.com", ghostwriter.ErrorMessage(err))
	})

	t.Run("other errors are internal", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("boom")

		assert.Equal(t, ghostwriter.EINTERNAL, ghostwriter.ErrorCode(err))
		assert.Equal(t, "Internal error", ghostwriter.ErrorMessage(err))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ghostwriter.ErrorMessage(nil))
}
