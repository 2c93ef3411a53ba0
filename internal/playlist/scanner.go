package playlist

// Scan splits container into fixed 256-byte records and parses each one
// independently. A trailing partial record is dropped silently. Records
// without any identifier yield no entry; identical input always yields
// identical output.
func Scan(container []byte) []Entry {
	n := len(container) / RecordSize

	var entries []Entry
	for i := 0; i < n; i++ {
		record := container[i*RecordSize : (i+1)*RecordSize]

		ids := DetectIdentifiers(record)
		if len(ids) == 0 {
			continue
		}

		entries = append(entries, Entry{
			RecordIndex: i,
			UUID:        canonicalUUID(ids),
			Title:       bestTitle(DetectTextRuns(record)),
			Identifiers: ids,
		})
	}
	return entries
}

// canonicalUUID picks the marker-flagged identifier, else the first one in
// offset order. ids must be non-empty.
func canonicalUUID(ids []Identifier) string {
	for _, id := range ids {
		if id.HasMarker {
			return id.UUID
		}
	}
	return ids[0].UUID
}
