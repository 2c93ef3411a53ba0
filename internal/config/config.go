// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. All defaults match the legacy Python renamer (v6.1) for parity.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultExportName is the CSV mapping file written by --export when no
// explicit path is given, matching the legacy tool's output name.
const DefaultExportName = "playlist_mapping.csv"

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args).
	PlaylistPath string // playlist.bin container file.
	SourceDir    string // Folder holding <uuid>.mp3 files (and paired images).

	// Output.
	OutputDir  string // Copy destination; empty means report only.
	ExportCSV  bool   // Write the CSV mapping file.
	ExportPath string // CSV path. Default: "playlist_mapping.csv".

	// Title resolution.
	ID3Only      bool // Ignore playlist-extracted titles; ID3 or UUID only.
	MaxNameBytes int  // Sanitized name budget in UTF-8 bytes. Default: 60 (device limit is 64).

	// Behavior flags.
	NoImages  bool // Skip paired .jpg/.jpeg files.
	DryRun    bool // Never copy, even when OutputDir is set.
	AssumeYes bool // Skip the copy confirmation prompt.

	// Modes.
	CheckOnly    bool // Run diagnostics and exit.
	Inspect      bool // Dump raw record structure and exit.
	InspectLimit int  // Records shown by --inspect. Default: 8.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// renamer behavior. Used as the base before [ParseFlags] applies CLI
// overrides.
func DefaultConfig() Config {
	return Config{
		ExportPath:   DefaultExportName,
		MaxNameBytes: 60,
		InspectLimit: 8,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks field ranges and, outside CheckOnly mode, requires the two
// positional paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.MaxNameBytes < 1 {
		return fmt.Errorf("max name length must be at least 1 byte (got %d)", c.MaxNameBytes)
	}
	if c.InspectLimit < 1 {
		return fmt.Errorf("inspect record count must be at least 1 (got %d)", c.InspectLimit)
	}
	if c.ExportCSV && c.ExportPath == "" {
		return errors.New("export path must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.PlaylistPath == "" || c.SourceDir == "" {
		return errors.New("need exactly playlist.bin and source_dir")
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not the resolved
// source directory. Copying renamed files back into the source folder would
// mix them with the <uuid>.mp3 originals and poison later runs. Both
// arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, outputAbs string) error {
	if outputAbs == sourceAbs {
		return errors.New("output directory must not be the source directory")
	}
	return nil
}
