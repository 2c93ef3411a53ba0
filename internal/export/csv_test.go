package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/merlinrescue/internal/mapping"
	"github.com/backmassage/merlinrescue/internal/title"
)

func sampleItems() []mapping.Item {
	return []mapping.Item{
		{
			UUID:          "1c74e8f3-123e-4497-964b-6720f1817071",
			FinalTitle:    "My Favorite Song",
			ID3Title:      "My Favorite Song",
			PlaylistTitle: "My Favorite, Song",
			Source:        title.SourceID3,
			MP3Exists:     true,
			ImageExists:   false,
		},
		{
			UUID:       "9f8e7d6c-5b4a-3210-fedc-ba9876543210",
			FinalTitle: "9f8e7d6c-5b4a-3210-fedc-ba9876543210",
			Source:     title.SourceUUID,
		},
	}
}

func TestWriteCSV_ExactFormat(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, sampleItems()); err != nil {
		t.Fatal(err)
	}

	want := "uuid,final_title,id3_title,playlist_title,title_source,mp3_exists,image_exists\n" +
		"\"1c74e8f3-123e-4497-964b-6720f1817071\",\"My Favorite Song\",\"My Favorite Song\",\"My Favorite, Song\",\"ID3\",true,false\n" +
		"\"9f8e7d6c-5b4a-3210-fedc-ba9876543210\",\"9f8e7d6c-5b4a-3210-fedc-ba9876543210\",\"\",\"\",\"UUID\",false,false\n"
	if sb.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestWriteCSV_NoInternalEscaping(t *testing.T) {
	items := []mapping.Item{{
		UUID:       "1c74e8f3-123e-4497-964b-6720f1817071",
		FinalTitle: `Song "Live" Cut`,
		Source:     title.SourcePlaylist,
	}}
	var sb strings.Builder
	if err := WriteCSV(&sb, items); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"Song "Live" Cut"`) {
		t.Errorf("quotes must pass through unescaped, got:\n%s", sb.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist_mapping.csv")
	if err := WriteFile(path, sampleItems()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "uuid,final_title,id3_title,playlist_title,title_source,mp3_exists,image_exists" {
		t.Errorf("header = %q", lines[0])
	}
}
