// Package check provides the --check diagnostics: playlist file health,
// identifier coverage, and a census of the recovered source directory.
package check

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/merlinrescue/internal/config"
	"github.com/backmassage/merlinrescue/internal/display"
	"github.com/backmassage/merlinrescue/internal/playlist"
	"github.com/backmassage/merlinrescue/internal/tags"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow. It is informational only and
// does not stop on failure; each section degrades to a warning when its
// input path was not given.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== Device Check ===")

	checkPlaylist(cfg, log)
	checkSource(cfg, log)
}

// checkPlaylist reports file size, record alignment, and how many records
// carry a recognizable identifier.
func checkPlaylist(cfg *config.Config, log Logger) {
	if cfg.PlaylistPath == "" {
		log.Warn("No playlist file given, skipping playlist check")
		return
	}
	data, err := os.ReadFile(cfg.PlaylistPath)
	if err != nil {
		log.Error("Cannot read playlist: %v", err)
		return
	}

	records := len(data) / playlist.RecordSize
	log.Success("Playlist: %s (%s)", cfg.PlaylistPath, display.FormatBytes(int64(len(data))))
	log.Info("  Records: %d", records)
	if rem := len(data) % playlist.RecordSize; rem != 0 {
		log.Warn("  Trailing bytes: %d (file is not record-aligned)", rem)
	}
	if records == 0 {
		log.Error("  File smaller than one record")
		return
	}

	entries := playlist.Scan(data)
	var withMarker, withTitle int
	for _, e := range entries {
		for _, id := range e.Identifiers {
			if id.HasMarker {
				withMarker++
				break
			}
		}
		if e.Title != "" {
			withTitle++
		}
	}
	log.Info("  Identifiers: %s records", display.Ratio(len(entries), records))
	log.Info("  Marker hits: %s entries", display.Ratio(withMarker, len(entries)))
	log.Info("  Embedded titles: %s entries", display.Ratio(withTitle, len(entries)))
	if len(entries) == 0 {
		log.Error("  No identifiers found; is this really a playlist.bin?")
	}
}

// checkSource counts recovered files by kind and smoke-tests tag reading on
// the first MP3 it finds.
func checkSource(cfg *config.Config, log Logger) {
	if cfg.SourceDir == "" {
		log.Warn("No source directory given, skipping source check")
		return
	}
	dirents, err := os.ReadDir(cfg.SourceDir)
	if err != nil {
		log.Error("Cannot read source directory: %v", err)
		return
	}

	var mp3s, images, other int
	var firstMP3 string
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(de.Name())) {
		case ".mp3":
			mp3s++
			if firstMP3 == "" {
				firstMP3 = filepath.Join(cfg.SourceDir, de.Name())
			}
		case ".jpg", ".jpeg":
			images++
		default:
			other++
		}
	}

	log.Success("Source: %s", cfg.SourceDir)
	log.Info("  MP3 files: %d", mp3s)
	log.Info("  Images: %d", images)
	if other > 0 {
		log.Info("  Other files: %d", other)
	}
	if mp3s == 0 {
		log.Error("  No MP3 files; nothing to rescue")
		return
	}

	if v, ok := tags.NewReader().Lookup(firstMP3, tags.PlaylistKeys); ok {
		log.Success("  Tag read OK: %q (%s)", v, filepath.Base(firstMP3))
	} else {
		log.Warn("  No readable tag in %s (titles will come from the playlist)", filepath.Base(firstMP3))
	}
}
