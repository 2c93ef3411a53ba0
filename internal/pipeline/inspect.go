package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/backmassage/merlinrescue/internal/config"
	"github.com/backmassage/merlinrescue/internal/display"
	"github.com/backmassage/merlinrescue/internal/logging"
	"github.com/backmassage/merlinrescue/internal/playlist"
)

// Inspect dumps the raw structure of the first records to stdout: a hex/ASCII
// view plus the identifiers and text candidates the scanner sees. This is the
// tool for reverse-engineering firmware variants whose records do not parse.
func Inspect(cfg *config.Config, log *logging.Logger) error {
	data, err := os.ReadFile(cfg.PlaylistPath)
	if err != nil {
		return fmt.Errorf("reading playlist: %w", err)
	}

	n := len(data) / playlist.RecordSize
	log.Info("Playlist: %s (%s, %d records)",
		cfg.PlaylistPath, display.FormatBytes(int64(len(data))), n)
	if rem := len(data) % playlist.RecordSize; rem != 0 {
		log.Warn("Ignoring %d trailing bytes (not a whole record)", rem)
	}

	limit := cfg.InspectLimit
	if limit > n {
		limit = n
	}
	for i := 0; i < limit; i++ {
		record := data[i*playlist.RecordSize : (i+1)*playlist.RecordSize]
		DumpRecord(os.Stdout, i, record)
	}
	if n > limit {
		log.Info("... %d more records (raise --inspect-records to see them)", n-limit)
	}
	return nil
}

// DumpRecord writes one record as a 16-bytes-per-line hex dump followed by
// the scanner's findings. The ASCII gutter renders strict printable ASCII
// only; high bytes show as '.' even though the title scanner accepts them.
func DumpRecord(w io.Writer, index int, record []byte) {
	fmt.Fprintf(w, "=== Record %d (offset 0x%06x) ===\n", index, index*playlist.RecordSize)

	for off := 0; off < len(record); off += 16 {
		end := off + 16
		if end > len(record) {
			end = len(record)
		}
		line := record[off:end]

		fmt.Fprintf(w, "%04x  ", off)
		for i := 0; i < 16; i++ {
			if i < len(line) {
				fmt.Fprintf(w, "%02x ", line[i])
			} else {
				fmt.Fprint(w, "   ")
			}
			if i == 7 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprint(w, " |")
		for _, b := range line {
			if b >= 32 && b <= 126 {
				fmt.Fprintf(w, "%c", b)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w, "|")
	}

	ids := playlist.DetectIdentifiers(record)
	if len(ids) == 0 {
		fmt.Fprintln(w, "identifiers: none")
	} else {
		fmt.Fprintln(w, "identifiers:")
		for _, id := range ids {
			marker := ""
			if id.HasMarker {
				marker = "  (marker)"
			}
			fmt.Fprintf(w, "  0x%04x  %s%s\n", id.Offset, id.UUID, marker)
		}
	}

	cands := playlist.DetectTextRuns(record)
	if len(cands) == 0 {
		fmt.Fprintln(w, "text candidates: none")
	} else {
		fmt.Fprintln(w, "text candidates:")
		for _, c := range cands {
			fmt.Fprintf(w, "  0x%04x  %q\n", c.Offset, c.Text)
		}
	}
	fmt.Fprintln(w)
}
