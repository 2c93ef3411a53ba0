// Package mapping joins parsed playlist entries with the recovered files on
// disk and resolves the final display title for each track.
package mapping

import (
	"os"
	"path/filepath"

	"github.com/backmassage/merlinrescue/internal/playlist"
	"github.com/backmassage/merlinrescue/internal/tags"
	"github.com/backmassage/merlinrescue/internal/title"
)

// imageExts lists the cover art extensions paired with a track, checked in
// order. The device mixes cases on its FAT volume, so both are tried.
var imageExts = []string{".jpg", ".jpeg", ".JPG", ".JPEG"}

// Item is one playlist entry joined with the source directory contents.
type Item struct {
	UUID          string
	RecordIndex   int
	MP3Path       string
	MP3Exists     bool
	ImagePath     string // empty when no cover art was found
	ImageExists   bool
	ID3Title      string
	PlaylistTitle string
	FinalTitle    string // sanitized, ready for use as a filename
	Source        title.Source
}

// Options controls title resolution during the build.
type Options struct {
	ID3Only      bool
	MaxNameBytes int
	WithImages   bool
}

// Build maps every entry onto sourceDir. Missing files are recorded, not
// skipped: the CSV export reports them and the copy phase filters on
// MP3Exists. Entries come out in playlist order.
func Build(entries []playlist.Entry, sourceDir string, reader tags.Reader, opts Options) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		it := Item{
			UUID:          e.UUID,
			RecordIndex:   e.RecordIndex,
			MP3Path:       filepath.Join(sourceDir, e.UUID+".mp3"),
			PlaylistTitle: e.Title,
		}
		it.MP3Exists = fileExists(it.MP3Path)

		if it.MP3Exists {
			if v, ok := reader.Lookup(it.MP3Path, tags.PlaylistKeys); ok {
				it.ID3Title = v
			}
		}

		if opts.WithImages {
			it.ImagePath, it.ImageExists = findImage(sourceDir, e.UUID)
		}

		res := title.Resolve(e.UUID, it.PlaylistTitle, it.ID3Title, opts.ID3Only)
		it.FinalTitle = title.SanitizeN(res.Title, opts.MaxNameBytes)
		it.Source = res.Source

		items = append(items, it)
	}
	return items
}

func findImage(dir, uuid string) (string, bool) {
	for _, ext := range imageExts {
		p := filepath.Join(dir, uuid+ext)
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
