// Package pipeline orchestrates the rescue run: parse the playlist, join it
// with the recovered files, report the mapping, and optionally export CSV and
// copy the tracks out under their resolved titles.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"

	"github.com/backmassage/merlinrescue/internal/config"
	"github.com/backmassage/merlinrescue/internal/display"
	"github.com/backmassage/merlinrescue/internal/export"
	"github.com/backmassage/merlinrescue/internal/logging"
	"github.com/backmassage/merlinrescue/internal/mapping"
	"github.com/backmassage/merlinrescue/internal/playlist"
	"github.com/backmassage/merlinrescue/internal/tags"
	"github.com/backmassage/merlinrescue/internal/title"
)

// ErrNoEntries means the playlist parsed cleanly but no record carried an
// identifier. Usually the wrong file was passed, so the run halts instead of
// quietly producing an empty mapping.
var ErrNoEntries = errors.New("no entries with identifiers found in playlist")

// Run is the top-level entry point. It reads the playlist once, scans it,
// joins the entries with the source directory, reports, exports, and copies.
// Per-track copy failures are counted, not fatal; setup failures are.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	data, err := os.ReadFile(cfg.PlaylistPath)
	if err != nil {
		return stats, fmt.Errorf("reading playlist: %w", err)
	}

	stats.Records = len(data) / playlist.RecordSize
	log.Info("Playlist: %s (%s, %d records)",
		cfg.PlaylistPath, display.FormatBytes(int64(len(data))), stats.Records)
	if rem := len(data) % playlist.RecordSize; rem != 0 {
		log.Warn("Ignoring %d trailing bytes (not a whole record)", rem)
	}

	entries := playlist.Scan(data)
	stats.Entries = len(entries)
	if len(entries) == 0 {
		return stats, ErrNoEntries
	}

	items := mapping.Build(entries, cfg.SourceDir, tags.NewReader(), mapping.Options{
		ID3Only:      cfg.ID3Only,
		MaxNameBytes: cfg.MaxNameBytes,
		WithImages:   !cfg.NoImages,
	})
	tally(&stats, items)

	logMapping(cfg, log, items)
	logSummary(cfg, log, &stats)

	if cfg.ExportCSV {
		if err := export.WriteFile(cfg.ExportPath, items); err != nil {
			return stats, err
		}
		log.Success("Wrote mapping: %s (%d rows)", cfg.ExportPath, len(items))
	}

	if cfg.OutputDir == "" {
		return stats, nil
	}
	if err := copyTracks(ctx, cfg, log, items, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// copyTracks materializes the mapping: every item with a recovered MP3 is
// copied (never moved) into the output directory under its final title.
func copyTracks(ctx context.Context, cfg *config.Config, log *logging.Logger, items []mapping.Item, stats *RunStats) error {
	if !cfg.DryRun && !cfg.AssumeYes {
		ok, err := confirmCopy(cfg, stats.WithMP3)
		if err != nil {
			return err
		}
		if !ok {
			log.Warn("Copy aborted")
			return nil
		}
	}

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	claimed := make(map[string]bool)
	for _, it := range items {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		if !it.MP3Exists {
			log.Debug(cfg.Verbose, "Missing on disk: %s", it.UUID)
			stats.SkippedMissing++
			continue
		}

		dst := UniquePath(cfg.OutputDir, it.FinalTitle, ".mp3", claimed)
		if cfg.DryRun {
			log.Success("[DRY] Would copy %s -> %s", it.UUID, filepath.Base(dst))
			stats.Copied++
			dryRunImage(cfg, log, it, claimed, stats)
			continue
		}

		n, err := CopyFile(it.MP3Path, dst)
		if err != nil {
			log.Error("Copy failed: %v", err)
			stats.Failed++
			continue
		}
		stats.Copied++
		stats.CopiedBytes += n
		log.Info("Copied %s -> %s", it.UUID, filepath.Base(dst))

		copyImage(cfg, log, it, claimed, stats)
	}

	if cfg.DryRun {
		log.Success("[DRY] Would copy %d tracks", stats.Copied)
	} else {
		log.Success("Copied %d tracks, %d images (%s)",
			stats.Copied, stats.CopiedImages, display.FormatBytes(stats.CopiedBytes))
	}
	return nil
}

func copyImage(cfg *config.Config, log *logging.Logger, it mapping.Item, claimed map[string]bool, stats *RunStats) {
	if cfg.NoImages || !it.ImageExists {
		return
	}
	dst := UniquePath(cfg.OutputDir, it.FinalTitle, imageExt(it.ImagePath), claimed)
	n, err := CopyFile(it.ImagePath, dst)
	if err != nil {
		log.Warn("Image copy failed: %v", err)
		return
	}
	stats.CopiedImages++
	stats.CopiedBytes += n
}

func dryRunImage(cfg *config.Config, log *logging.Logger, it mapping.Item, claimed map[string]bool, stats *RunStats) {
	if cfg.NoImages || !it.ImageExists {
		return
	}
	dst := UniquePath(cfg.OutputDir, it.FinalTitle, imageExt(it.ImagePath), claimed)
	log.Debug(cfg.Verbose, "[DRY] Would copy image -> %s", filepath.Base(dst))
	stats.CopiedImages++
}

// imageExt keeps the source extension but lowercases it, so FAT-cased .JPG
// files come out as .jpg.
func imageExt(path string) string {
	ext := filepath.Ext(path)
	switch ext {
	case ".JPG":
		return ".jpg"
	case ".JPEG":
		return ".jpeg"
	}
	return ext
}

func confirmCopy(cfg *config.Config, n int) (bool, error) {
	ok := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Copy %d tracks to %s?", n, cfg.OutputDir),
		Default: true,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, fmt.Errorf("confirmation prompt: %w (use -y to skip)", err)
	}
	return ok, nil
}

func tally(stats *RunStats, items []mapping.Item) {
	for _, it := range items {
		if it.MP3Exists {
			stats.WithMP3++
		}
		if it.ImageExists {
			stats.WithImage++
		}
		switch it.Source {
		case title.SourceID3:
			stats.FromID3++
		case title.SourcePlaylist:
			stats.FromPlaylist++
		case title.SourceUUID:
			stats.FromUUID++
		}
	}
}

// --- Logging helpers ---

// logMapping prints the per-track table. Shown on dry runs and verbose runs;
// a plain copy run only gets the per-file copy lines.
func logMapping(cfg *config.Config, log *logging.Logger, items []mapping.Item) {
	if !cfg.DryRun && !cfg.Verbose {
		return
	}
	for _, it := range items {
		marker := "ok"
		if !it.MP3Exists {
			marker = "missing"
		}
		log.Info("[%3d] %s  %-8s %-8s %s",
			it.RecordIndex, shortUUID(it.UUID), it.Source, marker,
			display.Truncate(it.FinalTitle, 48))
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Entries: %d (from %d records)", stats.Entries, stats.Records)
	log.Info("  Titles: %d from ID3, %d from playlist text, %d UUID fallback",
		stats.FromID3, stats.FromPlaylist, stats.FromUUID)
	log.Info("  On disk: %s tracks, %s images",
		display.Ratio(stats.WithMP3, stats.Entries),
		display.Ratio(stats.WithImage, stats.Entries))
	if missing := stats.Entries - stats.WithMP3; missing > 0 {
		log.Warn("  %d tracks referenced by the playlist are not in %s", missing, cfg.SourceDir)
	}
	fmt.Println()
}

func shortUUID(uuid string) string {
	if len(uuid) < 8 {
		return uuid
	}
	return uuid[:8]
}
