// Package title turns raw candidate strings (ID3 frames, playlist text runs,
// bare UUIDs) into filesystem-safe display titles.
//
// Resolve applies the source priority used by the legacy Python renamer
// (v6.1): an embedded ID3 title wins, a playlist text run is the fallback,
// and the bare UUID is the last resort so every track always gets a name.
//
// Sanitize is the accent-preserving variant. Early renamer builds stripped
// every non-alphanumeric rune, which mangled non-English titles; that
// behavior is gone and only the FAT-safe character replacement remains.
package title
