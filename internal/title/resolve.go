package title

import (
	"strings"
	"unicode/utf8"

	"github.com/backmassage/merlinrescue/internal/playlist"
)

// Source records where a resolved title came from. The values are the wire
// strings written to the CSV export, kept identical to the legacy Python
// renamer (v6.1) so downstream spreadsheets keep working.
type Source string

const (
	SourceID3      Source = "ID3"
	SourcePlaylist Source = "PLAYLIST"
	SourceUUID     Source = "UUID"
)

// minTagLen is the minimum trimmed length for an embedded tag title to be
// trusted. One- and two-character frames are almost always junk left by
// ripping tools.
const minTagLen = 3

// Resolution is the outcome of picking a display title for one track.
type Resolution struct {
	Title  string
	Source Source
}

// Resolve picks the display title for a track. An embedded ID3 title wins
// when it is at least minTagLen characters after trimming. Otherwise the
// playlist text is used, unless id3Only is set or the text is UUID-shaped.
// The bare uuid is the fallback of last resort, so the result is never empty.
func Resolve(uuid, playlistTitle, id3Title string, id3Only bool) Resolution {
	if t := strings.TrimSpace(id3Title); utf8.RuneCountInString(t) >= minTagLen {
		return Resolution{Title: t, Source: SourceID3}
	}
	if !id3Only {
		if t := strings.TrimSpace(playlistTitle); t != "" && !playlist.LooksLikeIdentifier(t) {
			return Resolution{Title: t, Source: SourcePlaylist}
		}
	}
	return Resolution{Title: uuid, Source: SourceUUID}
}
