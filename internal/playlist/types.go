package playlist

// RecordSize is the fixed length of one playlist.bin record. A trailing
// partial record (file length not a multiple of 256) is ignored, not an
// error; the device appears to pad the file in whole records.
const RecordSize = 256

// Marker is the 5-byte sentinel that precedes the canonical file UUID
// inside a record. Records holding several UUIDs (e.g. a file UUID and a
// playlist UUID) are disambiguated by it.
var Marker = []byte{0x4C, 0x61, 0x94, 0x69, 0x24}

// Identifier is one UUID candidate found inside a record.
type Identifier struct {
	UUID      string // Canonical 8-4-4-4-12 text, case preserved as stored.
	Offset    int    // Byte offset of the first character within the record.
	HasMarker bool   // Marker starts within the 5 bytes before Offset.
}

// TextCandidate is one printable run that survived the title filters.
type TextCandidate struct {
	Offset int
	Text   string
}

// Entry is the parsed, immutable result of scanning one record. Records
// without any identifier yield no Entry.
type Entry struct {
	RecordIndex int
	UUID        string // Canonical identifier: marker-flagged, else first by offset.
	Title       string // Longest surviving text candidate; empty if none.
	Identifiers []Identifier
}
