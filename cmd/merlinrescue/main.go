// Command merlinrescue is the entrypoint for the Merlin playlist rescue CLI.
// It parses flags, validates config and paths, and runs diagnostics (--check),
// the record inspector (--inspect), or the full rescue pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/merlinrescue/internal/check"
	"github.com/backmassage/merlinrescue/internal/config"
	"github.com/backmassage/merlinrescue/internal/display"
	"github.com/backmassage/merlinrescue/internal/logging"
	"github.com/backmassage/merlinrescue/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load config from defaults and CLI flags; exit on parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "merlinrescue: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "merlinrescue: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "merlinrescue: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	// 2. Diagnostics-only modes exit before path validation: --check works
	// with partial arguments, --inspect needs only the playlist.
	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}
	if cfg.Inspect {
		if err := pipeline.Inspect(&cfg, log); err != nil {
			log.Error("%v", err)
			return 1
		}
		return 0
	}

	// 3. Resolve and validate paths: source must exist, output must not be
	// the source directory itself.
	sourceAbs, err := absPath(cfg.SourceDir)
	if err != nil {
		log.Error("Source directory not found: %s", cfg.SourceDir)
		return 1
	}
	cfg.SourceDir = sourceAbs
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Error("Cannot create output directory: %s", cfg.OutputDir)
			return 1
		}
		outputAbs, err := absPath(cfg.OutputDir)
		if err != nil {
			log.Error("Cannot resolve output path: %s", cfg.OutputDir)
			return 1
		}
		if err := cfg.ValidatePaths(sourceAbs, outputAbs); err != nil {
			log.Error("%v", err)
			return 1
		}
		cfg.OutputDir = outputAbs
	}

	log.Info("=== MerlinRescue v%s (%s) ===", version, commit)
	log.Info("Playlist: %s", cfg.PlaylistPath)
	log.Info("Source:   %s", cfg.SourceDir)
	if cfg.OutputDir != "" {
		log.Info("Output:   %s", cfg.OutputDir)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	// 4. Run the pipeline; Ctrl-C cancels the copy loop between files.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute path with symlinks resolved, for comparing
// source vs output hierarchy.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
