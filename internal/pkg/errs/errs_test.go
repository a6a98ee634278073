//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"shuttlesync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestMark(t *testing.T) {
	t.Run("marked error matches the mark and keeps its message", func(t *testing.T) {
		base := errors.New("connection reset")
		marked := errs.Mark(base, errSentinel)

		assert.True(t, errors.Is(marked, errSentinel))
		assert.True(t, errs.Is(marked, base))
		assert.Equal(t, "connection reset", marked.Error())
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))
	assert.Nil(t, errs.Wrapf(nil, "ignored %d", 1))

	wrapped := errs.Wrapf(errSentinel, "loading day %s", "2026-10-17")
	assert.True(t, errors.Is(wrapped, errSentinel))
	assert.Equal(t, "loading day 2026-10-17: sentinel", wrapped.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.LessOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "boom")
}
