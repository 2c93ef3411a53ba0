package pipeline

// RunStats tracks aggregate counters and byte totals across a rescue run.
type RunStats struct {
	Records        int // whole 256-byte records in the playlist file
	Entries        int // records that produced a playlist entry
	WithMP3        int
	WithImage      int
	FromID3        int
	FromPlaylist   int
	FromUUID       int
	Copied         int
	CopiedImages   int
	SkippedMissing int
	Failed         int
	CopiedBytes    int64
}
