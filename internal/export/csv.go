// Package export writes the uuid-to-title mapping as CSV.
//
// The format is frozen for compatibility with the legacy Python renamer
// (v6.1): every string field is wrapped in double quotes without internal
// escaping, and booleans are written bare. Titles containing a double quote
// therefore produce a malformed row; the legacy tool had the same limitation
// and the spreadsheets built on top of it tolerate it.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/merlinrescue/internal/mapping"
)

const header = "uuid,final_title,id3_title,playlist_title,title_source,mp3_exists,image_exists"

// WriteCSV writes the header and one row per item, in item order.
func WriteCSV(w io.Writer, items []mapping.Item) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)
	for _, it := range items {
		fmt.Fprintf(bw, "\"%s\",\"%s\",\"%s\",\"%s\",\"%s\",%t,%t\n",
			it.UUID, it.FinalTitle, it.ID3Title, it.PlaylistTitle,
			it.Source, it.MP3Exists, it.ImageExists)
	}
	return bw.Flush()
}

// WriteFile writes the mapping to path, truncating any existing file.
func WriteFile(path string, items []mapping.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := WriteCSV(f, items); err != nil {
		f.Close()
		return fmt.Errorf("writing export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
