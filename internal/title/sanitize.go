package title

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxBytes is the filename budget for the title part, excluding the
// extension. The device firmware misbehaves on long names, so the budget is
// measured in UTF-8 bytes, not characters.
const DefaultMaxBytes = 60

// forbidden lists the characters replaced with '_'. The set is the Windows
// reserved set, which is also what FAT-formatted device storage rejects.
const forbidden = `\/:*?"<>|`

// Sanitize makes name safe for use as a filename: forbidden characters and
// control characters become '_', repeated spaces and underscores collapse,
// edges are trimmed of whitespace, dots, underscores and hyphens, and the
// result is cut to DefaultMaxBytes UTF-8 bytes by dropping trailing runes.
// An empty result becomes "unnamed". Sanitize is idempotent.
func Sanitize(name string) string {
	return SanitizeN(name, DefaultMaxBytes)
}

// SanitizeN is Sanitize with an explicit byte budget.
func SanitizeN(name string, maxBytes int) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < 32 || strings.ContainsRune(forbidden, r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	s := b.String()

	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}

	s = trimEdges(s)
	s = truncateBytes(s, maxBytes)
	s = trimEdges(s)

	if s == "" {
		return "unnamed"
	}
	return s
}

// trimEdges strips whitespace, dots, underscores and hyphens from both ends,
// repeating until stable so mixed edges like " ._ " come off completely.
func trimEdges(s string) string {
	for {
		t := strings.Trim(strings.TrimSpace(s), "._- ")
		if t == s {
			return s
		}
		s = t
	}
}

// truncateBytes drops whole trailing runes until s fits in max bytes, so a
// multi-byte rune is never split.
func truncateBytes(s string, max int) string {
	if max < 0 {
		max = 0
	}
	for len(s) > max {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}
