package title

import "testing"

func TestResolve(t *testing.T) {
	const uuid = "1c74e8f3-123e-4497-964b-6720f1817071"
	tests := []struct {
		name       string
		playlist   string
		id3        string
		id3Only    bool
		wantTitle  string
		wantSource Source
	}{
		{
			name:       "id3 wins over playlist",
			playlist:   "Playlist Text",
			id3:        "Proper Tag Title",
			wantTitle:  "Proper Tag Title",
			wantSource: SourceID3,
		},
		{
			name:       "short id3 rejected",
			playlist:   "Playlist Text",
			id3:        "ab",
			wantTitle:  "Playlist Text",
			wantSource: SourcePlaylist,
		},
		{
			name:       "whitespace id3 rejected",
			playlist:   "Playlist Text",
			id3:        "   \t ",
			wantTitle:  "Playlist Text",
			wantSource: SourcePlaylist,
		},
		{
			name:       "id3 trimmed",
			id3:        "  Tag Title  ",
			wantTitle:  "Tag Title",
			wantSource: SourceID3,
		},
		{
			name:       "uuid fallback",
			wantTitle:  uuid,
			wantSource: SourceUUID,
		},
		{
			name:       "uuid-shaped playlist text skipped",
			playlist:   "9f8e7d6c-5b4a-3210-fedc-ba9876543210",
			wantTitle:  uuid,
			wantSource: SourceUUID,
		},
		{
			name:       "id3-only ignores playlist",
			playlist:   "Playlist Text",
			id3Only:    true,
			wantTitle:  uuid,
			wantSource: SourceUUID,
		},
		{
			name:       "id3-only still takes tags",
			playlist:   "Playlist Text",
			id3:        "Tag Title",
			id3Only:    true,
			wantTitle:  "Tag Title",
			wantSource: SourceID3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(uuid, tt.playlist, tt.id3, tt.id3Only)
			if got.Title != tt.wantTitle || got.Source != tt.wantSource {
				t.Errorf("Resolve = {%q %s}, want {%q %s}",
					got.Title, got.Source, tt.wantTitle, tt.wantSource)
			}
		})
	}
}
