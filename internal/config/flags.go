package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into output, titles, behavior, display, and utility.
// Boolean toggles are captured separately and applied after Parse so Config
// defaults hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// args). version is shown in help output.
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("merlinrescue", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var extra extraFlags

	defineOutputFlags(fs, cfg)
	defineTitleFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &extra)
	defineUtilityFlags(fs, &extra)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyExtraFlags(cfg, &extra)

	if extra.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if extra.showVersion {
		fmt.Fprintln(os.Stdout, "merlinrescue v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// extraFlags holds flags that are applied after Parse: color overrides and
// the exit-after-printing flags.
type extraFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineOutputFlags registers -o/--output, -e/--export, --csv.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputDir, "output", "", "Copy renamed files into this folder")
	fs.StringVar(&cfg.OutputDir, "o", "", "Same as --output")
	fs.BoolVar(&cfg.ExportCSV, "export", false, "Write the CSV mapping file")
	fs.BoolVar(&cfg.ExportCSV, "e", false, "Same as --export")
	fs.StringVar(&cfg.ExportPath, "csv", cfg.ExportPath, "CSV mapping file path")
}

// defineTitleFlags registers --id3-only and --max-name-bytes.
func defineTitleFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.ID3Only, "id3-only", false, "Use ID3 tags only; ignore playlist titles")
	fs.IntVar(&cfg.MaxNameBytes, "max-name-bytes", cfg.MaxNameBytes, "Sanitized name budget in UTF-8 bytes")
}

// defineBehaviorFlags registers --no-images, dry-run, --yes.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.NoImages, "no-images", false, "Skip paired .jpg/.jpeg images")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Report only; never copy files")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Skip the copy confirmation prompt")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check,
// --inspect, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, x *extraFlags) {
	fs.BoolVar(&x.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&x.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run playlist/source diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&cfg.Inspect, "inspect", false, "Dump raw record structure and exit")
	fs.IntVar(&cfg.InspectLimit, "inspect-records", cfg.InspectLimit, "Records shown by --inspect")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, x *extraFlags) {
	fs.BoolVar(&x.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&x.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&x.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&x.showHelp, "h", false, "Same as --help")
}

// applyExtraFlags copies post-parse flag values into cfg.
func applyExtraFlags(cfg *Config, x *extraFlags) {
	if x.noColor {
		cfg.ColorMode = ColorNever
	} else if x.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets PlaylistPath and SourceDir from the two positional
// args when not in CheckOnly mode. CheckOnly accepts them optionally so the
// diagnostics can inspect a real playlist when one is given.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		if len(args) >= 1 {
			cfg.PlaylistPath = args[0]
		}
		if len(args) >= 2 {
			cfg.SourceDir = NormalizeDirArg(args[1])
		}
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("need exactly playlist.bin and source_dir")
	}
	cfg.PlaylistPath = args[0]
	cfg.SourceDir = NormalizeDirArg(args[1])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "merlinrescue v" + version + " - recover track titles from a Merlin playlist.bin"},
		{"", ""},
		{"  merlinrescue [OPTIONS] <playlist.bin> <source_dir>", ""},
		{"", ""},
		{"Output", ""},
		{"  -o, --output <dir>", "Copy renamed files into this folder"},
		{"  -e, --export", "Write the CSV mapping file"},
		{"  --csv <path>", "CSV mapping path (default: " + DefaultExportName + ")"},
		{"", ""},
		{"Titles", ""},
		{"  --id3-only", "Use ID3 tags only; ignore playlist titles"},
		{"  --max-name-bytes <n>", "Sanitized name budget in UTF-8 bytes (default: 60)"},
		{"", ""},
		{"Behavior", ""},
		{"  --no-images", "Skip paired .jpg/.jpeg images"},
		{"  -d, --dry-run", "Report only; never copy files"},
		{"  -y, --yes", "Skip the copy confirmation prompt"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Playlist/source diagnostics"},
		{"  --inspect", "Dump raw record structure (hex + candidates)"},
		{"  --inspect-records <n>", "Records shown by --inspect (default: 8)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
