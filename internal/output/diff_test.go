package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedDiff(t *testing.T) {
	diff := UnifiedDiff("README.md", "a\nb\nc\n", "a\nB\nc\n")

	assert.True(t, strings.HasPrefix(diff, "--- README.md\n+++ README.md (generated)\n"), diff)
	assert.Contains(t, diff, "@@ -1,3 +1,3 @@")
	assert.Contains(t, diff, "\n-b\n")
	assert.Contains(t, diff, "\n+B\n")
	assert.Contains(t, diff, " a\n")
}

func TestUnifiedDiff_Equal(t *testing.T) {
	assert.Empty(t, UnifiedDiff("README.md", "same\n", "same\n"))
}

func TestColorize(t *testing.T) {
	diff := UnifiedDiff("README.md", "a\nb\n", "a\nB\n")

	t.Run("disabled", func(t *testing.T) {
		assert.Equal(t, diff, Colorize(diff, false))
	})

	t.Run("enabled", func(t *testing.T) {
		out := Colorize(diff, true)

		assert.Contains(t, out, "\x1b[32m+B\x1b[0m\n")
		assert.Contains(t, out, "\x1b[31m-b\x1b[0m\n")
		assert.Contains(t, out, "\x1b[36m@@")
		assert.Contains(t, out, " a\n")
		assert.Equal(t, strings.Count(diff, "\n"), strings.Count(out, "\n"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Colorize("", true))
	})
}
