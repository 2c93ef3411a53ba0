// Package display provides the banner and human-readable formatting helpers
// for the mapping table and copy summary.
package display

import (
	"fmt"
	"unicode/utf8"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// Truncate shortens s to max characters, replacing the tail with an ellipsis.
// Counts runes, not bytes, so accented titles are never split mid-rune.
// Used for table cells so long titles don't break column alignment.
func Truncate(s string, max int) string {
	if max <= 1 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

// Ratio formats "found/total" counters for the summary block.
func Ratio(found, total int) string {
	return fmt.Sprintf("%d/%d", found, total)
}
