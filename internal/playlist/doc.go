// Package playlist parses the Merlin device's playlist.bin container.
//
// The format has no public schema. What reverse engineering established: the
// file is a concatenation of fixed 256-byte records, one per library entry,
// and each record carries one or more UUID strings in canonical text form
// plus, usually, the track title as a printable text run. Field offsets vary
// between records, so everything is located by pattern search rather than
// fixed-offset decode.
//
// The package is split into two side-effect-free detectors that each scan a
// full record independently: [DetectIdentifiers] finds UUID candidates and
// the 5-byte marker that flags the canonical file identifier, and
// [DetectTextRuns] finds printable runs that survive the title filters.
// [Scan] combines them into [Entry] values.
//
// Types:
//   - Entry (record index, canonical UUID, playlist title, all identifiers)
//   - Identifier (UUID text, byte offset, marker flag)
//   - TextCandidate (byte offset, decoded text)
//
// Functions:
//   - Scan(container) → []Entry
//   - DetectIdentifiers(record) → []Identifier
//   - DetectTextRuns(record) → []TextCandidate
//   - LooksLikeIdentifier(text) → bool
package playlist
