package playlist

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Title filter thresholds, matching the legacy renamer: a candidate must be
// at least 8 characters after trimming, contain at least 3 letters, and not
// look like an identifier.
const (
	minTitleLen   = 8
	minTitleAlpha = 3
)

// reHexPrefix matches the start of a UUID-like token (8 hex digits then a
// hyphen); its presence anywhere disqualifies a text run as a title.
var reHexPrefix = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}`)

// LooksLikeIdentifier reports whether text is UUID-shaped rather than a
// human title: it contains an 8-hex-then-hyphen token, or (when longer than
// 10 characters) more than 70% of its characters are hex digits or hyphens.
func LooksLikeIdentifier(text string) bool {
	if text == "" {
		return false
	}
	if reHexPrefix.MatchString(text) {
		return true
	}
	var hexish, total int
	for _, r := range text {
		total++
		if isHexOrHyphen(r) {
			hexish++
		}
	}
	return total > 10 && float64(hexish)/float64(total) > 0.7
}

func isHexOrHyphen(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	case r == '-':
		return true
	}
	return false
}

// DetectTextRuns scans a record left to right for maximal runs of bytes with
// value >= 32 and decodes each as UTF-8, falling back to Latin-1 when the
// run is not valid UTF-8. The inclusive lower bound deliberately admits
// bytes >= 128 so multi-byte UTF-8 titles survive; this is what the shipped
// renamer used (the diagnostic dump renders strict ASCII instead).
// Runs failing the title filters are dropped.
func DetectTextRuns(record []byte) []TextCandidate {
	var out []TextCandidate
	i := 0
	for i < len(record) {
		if record[i] < 32 {
			i++
			continue
		}
		start := i
		for i < len(record) && record[i] >= 32 {
			i++
		}
		text, ok := decodeRun(record[start:i])
		if !ok {
			continue
		}
		text = strings.TrimSpace(text)
		if !keepCandidate(text) {
			continue
		}
		out = append(out, TextCandidate{Offset: start, Text: text})
	}
	return out
}

// decodeRun decodes raw bytes as UTF-8, then Latin-1. The Latin-1 decode
// maps every byte to a rune, so in practice decoding never fails; the bool
// mirrors the decoder API in case the fallback ever reports an error.
func decodeRun(raw []byte) (string, bool) {
	if utf8.Valid(raw) {
		return string(raw), true
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

func keepCandidate(text string) bool {
	if utf8.RuneCountInString(text) < minTitleLen {
		return false
	}
	if LooksLikeIdentifier(text) {
		return false
	}
	var letters int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= minTitleAlpha
}

// bestTitle returns the longest candidate, preferring the earliest offset on
// ties. Length is measured in characters, not bytes, so accented titles
// compete fairly with ASCII ones.
func bestTitle(cands []TextCandidate) string {
	best := ""
	bestLen := 0
	for _, c := range cands {
		if n := utf8.RuneCountInString(c.Text); n > bestLen {
			best = c.Text
			bestLen = n
		}
	}
	return best
}
