// Package textutil contains small text helpers shared by the agent loop:
// length-safe truncation for log previews and sanitization of error text
// before it is folded back into a conversation transcript.
package textutil

import (
	"regexp"
	"strings"
)

// maxErrorLen bounds error text inserted into a transcript so one oversized
// backend payload cannot swamp the conversation sent back to the model.
const maxErrorLen = 500

// Truncate returns s shortened to at most max runes, with an ellipsis
// appended when anything was cut. It never indexes past the available
// length, so arguments shorter than max pass through unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

var secretPatterns = []*regexp.Regexp{
	// Bearer scheme credentials, e.g. "Authorization: Bearer <token>".
	regexp.MustCompile(`(?i)\bbearer\s+\S+`),
	// Key/token assignments, e.g. "api_key=sk-...".
	regexp.MustCompile(`(?i)(api[_-]?key|token|secret)\s*[:=]\s*\S+`),
	// Bare OpenAI/Anthropic style keys.
	regexp.MustCompile(`\bsk-[A-Za-z0-9-_]{8,}`),
}

// SanitizeError prepares error text for transcript insertion: collapses
// whitespace, redacts credential-looking substrings, and bounds the length.
func SanitizeError(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	for _, re := range secretPatterns {
		s = re.ReplaceAllString(s, "[redacted]")
	}
	return Truncate(s, maxErrorLen)
}
