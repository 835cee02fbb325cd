package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "", Truncate("", 100))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestTruncate_ShorterThanLimitIsUntouched(t *testing.T) {
	// Regression guard: a fixed preview length must never index past the
	// available length.
	for _, s := range []string{"", "a", "ab", "abc"} {
		assert.Equal(t, s, Truncate(s, 100))
	}
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	assert.Equal(t, "héll...", Truncate("héllo wörld", 4))
}

func TestSanitizeError_RedactsCredentials(t *testing.T) {
	in := "request failed: api_key=sk-abcdef1234567890 rejected"
	out := SanitizeError(in)
	assert.NotContains(t, out, "sk-abcdef1234567890")
	assert.Contains(t, out, "[redacted]")

	out = SanitizeError("Authorization: Bearer xyz.secret.token failed")
	assert.NotContains(t, out, "xyz.secret.token")
}

func TestSanitizeError_BoundsLength(t *testing.T) {
	long := strings.Repeat("x", 2000)
	out := SanitizeError(long)
	assert.LessOrEqual(t, len(out), 503+3)
}

func TestSanitizeError_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", SanitizeError("a\n\n  b\t c "))
}
