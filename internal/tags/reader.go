// Package tags reads embedded title metadata from recovered MP3 files.
//
// The primary reader parses ID3v2 frames directly; a generic reader is the
// fallback for files whose tag block the primary parser rejects. Lookups
// never fail hard: recovered files are frequently truncated or half
// overwritten, and an unreadable tag just means "no embedded title".
package tags

import (
	"os"
	"strings"

	id3v2 "github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// Frame ID preference orders. Playlist-driven export prefers the album frame
// over the track number, the rename path prefers the track number; both start
// with the proper title frames.
var (
	PlaylistKeys = []string{"TIT2", "TIT1", "TALB"}
	RenameKeys   = []string{"TIT2", "TIT1", "TRCK"}
)

// Reader resolves an embedded title for a file, trying frame IDs in order.
type Reader interface {
	Lookup(path string, keys []string) (string, bool)
}

// ID3Reader reads ID3v2 frames from MP3 files on disk.
type ID3Reader struct{}

func NewReader() *ID3Reader { return &ID3Reader{} }

// Lookup returns the first non-empty frame value among keys, trimmed. It
// reports false when the file is missing, has no tag, or none of the frames
// carry text.
func (ID3Reader) Lookup(path string, keys []string) (string, bool) {
	if v, ok := lookupID3v2(path, keys); ok {
		return v, true
	}
	return lookupGeneric(path, keys)
}

func lookupID3v2(path string, keys []string) (string, bool) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", false
	}
	defer t.Close()
	for _, k := range keys {
		if v := strings.TrimSpace(t.GetTextFrame(k).Text); v != "" {
			return v, true
		}
	}
	return "", false
}

// lookupGeneric maps the well-known frame IDs onto the generic metadata
// accessors and falls back to the raw frame map for the rest.
func lookupGeneric(path string, keys []string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", false
	}
	for _, k := range keys {
		var v string
		switch k {
		case "TIT2":
			v = m.Title()
		case "TALB":
			v = m.Album()
		default:
			v = rawFrame(m, k)
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

func rawFrame(m tag.Metadata, key string) string {
	if v, ok := m.Raw()[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
