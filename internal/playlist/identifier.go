package playlist

import (
	"bytes"
	"regexp"

	"github.com/google/uuid"
)

// reUUID matches the canonical UUID text form: 8-4-4-4-12 hex groups,
// case-insensitive. Applied to raw record bytes; matches are non-overlapping,
// left to right.
var reUUID = regexp.MustCompile(
	`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// DetectIdentifiers scans a record for UUID candidates in ascending offset
// order. Each candidate is checked for the [Marker] sentinel starting within
// the 5 bytes immediately before it. The matched text is kept exactly as
// stored (no case normalization) so that <uuid>.mp3 filename lookups match
// the device's files.
func DetectIdentifiers(record []byte) []Identifier {
	var ids []Identifier
	for _, loc := range reUUID.FindAllIndex(record, -1) {
		text := string(record[loc[0]:loc[1]])
		if _, err := uuid.Parse(text); err != nil {
			continue
		}
		ids = append(ids, Identifier{
			UUID:      text,
			Offset:    loc[0],
			HasMarker: markerBefore(record, loc[0]),
		})
	}
	return ids
}

// markerBefore reports whether Marker starts at any offset in
// [off-5, off-1], clamped to the record bounds.
func markerBefore(record []byte, off int) bool {
	start := off - len(Marker)
	if start < 0 {
		start = 0
	}
	for i := start; i < off; i++ {
		if i+len(Marker) > len(record) {
			break
		}
		if bytes.Equal(record[i:i+len(Marker)], Marker) {
			return true
		}
	}
	return false
}
