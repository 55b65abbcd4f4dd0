package pagediff_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/pagediff"
	"github.com/stretchr/testify/assert"
)

func TestTruncateForDiff(t *testing.T) {
	t.Parallel()

	t.Run("leaves short text untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", pagediff.TruncateForDiff("hello"))
	})

	t.Run("caps long text at the character limit", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", pagediff.CharDiffLimit+100)

		got := pagediff.TruncateForDiff(long)

		assert.Equal(t, pagediff.CharDiffLimit, utf8.RuneCountInString(got))
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("é", pagediff.CharDiffLimit+1)

		got := pagediff.TruncateForDiff(long)

		assert.Equal(t, pagediff.CharDiffLimit, utf8.RuneCountInString(got))
		assert.True(t, utf8.ValidString(got))
	})
}
