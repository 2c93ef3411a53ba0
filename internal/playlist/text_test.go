package playlist

import "testing"

func TestLooksLikeIdentifier(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"plain title", "My Favorite Song", false},
		{"full uuid", "1c74e8f3-123e-4497-964b-6720f1817071", true},
		{"embedded uuid prefix", "track deadbeef-cafe leftover", true},
		{"mostly hex and hyphens", "abc-def-0123-456-789a", true},
		{"short hex not flagged", "deadbeef12", false},
		{"hex word in prose", "a cafe near the beach", false},
		{"hyphenated title", "Twenty-One Songs", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeIdentifier(tt.text); got != tt.want {
				t.Errorf("LooksLikeIdentifier(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectTextRuns_Filters(t *testing.T) {
	tests := []struct {
		name  string
		chunk []byte
		want  []string
	}{
		{"plain ascii title", []byte("My Favorite Song"), []string{"My Favorite Song"}},
		{"too short", []byte("Go Far"), nil},
		{"too few letters", []byte("12345 678 90"), nil},
		{"uuid shaped dropped", []byte("1c74e8f3-123e-4497-964b-6720f1817071"), nil},
		{"surrounding spaces trimmed", []byte("   Trimmed Title   "), []string{"Trimmed Title"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := buildRecord(t, map[int][]byte{64: tt.chunk})
			got := DetectTextRuns(rec)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d candidates %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i].Text != tt.want[i] {
					t.Errorf("candidate %d = %q, want %q", i, got[i].Text, tt.want[i])
				}
			}
		})
	}
}

func TestDetectTextRuns_SplitsOnControlBytes(t *testing.T) {
	rec := buildRecord(t, map[int][]byte{
		32: []byte("First Fragment"),
		64: []byte("Second Fragment Longer"),
	})
	got := DetectTextRuns(rec)
	if len(got) != 2 {
		t.Fatalf("got %d candidates %v, want 2", len(got), got)
	}
	if got[0].Text != "First Fragment" || got[0].Offset != 32 {
		t.Errorf("first candidate = %+v", got[0])
	}
	if got[1].Text != "Second Fragment Longer" || got[1].Offset != 64 {
		t.Errorf("second candidate = %+v", got[1])
	}
}

func TestDetectTextRuns_UTF8Title(t *testing.T) {
	rec := buildRecord(t, map[int][]byte{48: []byte("Café d'été session")})
	got := DetectTextRuns(rec)
	if len(got) != 1 {
		t.Fatalf("got %d candidates %v, want 1", len(got), got)
	}
	if got[0].Text != "Café d'été session" {
		t.Errorf("Text = %q, want UTF-8 decoded title", got[0].Text)
	}
}

func TestDetectTextRuns_Latin1Fallback(t *testing.T) {
	// 0xE9 followed by a space is invalid UTF-8, so the run must decode as
	// Latin-1 and come out as "Café du Soir".
	raw := []byte{'C', 'a', 'f', 0xE9, ' ', 'd', 'u', ' ', 'S', 'o', 'i', 'r'}
	rec := buildRecord(t, map[int][]byte{48: raw})
	got := DetectTextRuns(rec)
	if len(got) != 1 {
		t.Fatalf("got %d candidates %v, want 1", len(got), got)
	}
	if got[0].Text != "Café du Soir" {
		t.Errorf("Text = %q, want %q", got[0].Text, "Café du Soir")
	}
}

func TestDetectTextRuns_HighByteNoiseDropped(t *testing.T) {
	// Latin-1 maps these to currency and punctuation symbols, not letters,
	// so the run fails the letter-count filter.
	noise := make([]byte, 16)
	for i := range noise {
		noise[i] = 0xA4
	}
	rec := buildRecord(t, map[int][]byte{48: noise})
	if got := DetectTextRuns(rec); len(got) != 0 {
		t.Errorf("got %v, want no candidates", got)
	}
}

func TestBestTitle_LongestWinsFirstOnTie(t *testing.T) {
	tests := []struct {
		name  string
		cands []TextCandidate
		want  string
	}{
		{"none", nil, ""},
		{"longest wins", []TextCandidate{
			{Offset: 10, Text: "Short One"},
			{Offset: 40, Text: "A Much Longer Title"},
		}, "A Much Longer Title"},
		{"tie keeps first", []TextCandidate{
			{Offset: 10, Text: "Alpha Track"},
			{Offset: 40, Text: "Bravo Track"},
		}, "Alpha Track"},
		{"runes not bytes", []TextCandidate{
			{Offset: 10, Text: "éééé ééé"}, // 8 runes, 15 bytes
			{Offset: 40, Text: "abcd efgh"}, // 9 runes
		}, "abcd efgh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestTitle(tt.cands); got != tt.want {
				t.Errorf("bestTitle = %q, want %q", got, tt.want)
			}
		})
	}
}
