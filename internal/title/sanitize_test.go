package title

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean passes through", "My Favorite Song", "My Favorite Song"},
		{"accents preserved", "Café d'été", "Café d'été"},
		{"forbidden become underscore", `a\b/c:d*e`, "a_b_c_d_e"},
		{"quotes and angles", `say "hi" <now>`, "say _hi_ _now"},
		{"pipe and question", "what?|why", "what_why"},
		{"control chars", "ab\x01cd\tef", "ab_cd_ef"},
		{"double spaces collapse", "too   many    spaces", "too many spaces"},
		{"underscores collapse", "a___b____c", "a_b_c"},
		{"edges trimmed", "  .-_ Track One _-. ", "Track One"},
		{"mixed edge junk", "._ ._Hidden Track_. _.", "Hidden Track"},
		{"empty", "", "unnamed"},
		{"whitespace only", "   ", "unnamed"},
		{"forbidden only", "???", "unnamed"},
		{"dots only", "...", "unnamed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Sanitize(got); again != got {
				t.Errorf("not idempotent: Sanitize(%q) = %q", got, again)
			}
		})
	}
}

func TestSanitize_ByteBudget(t *testing.T) {
	long := strings.Repeat("abcde ", 20) // 120 bytes
	got := Sanitize(long)
	if len(got) > DefaultMaxBytes {
		t.Fatalf("len = %d bytes, want <= %d", len(got), DefaultMaxBytes)
	}
	if !strings.HasPrefix(long, got) {
		t.Errorf("truncation changed the prefix: %q", got)
	}
}

func TestSanitizeN_NeverSplitsRunes(t *testing.T) {
	long := strings.Repeat("é", 40) // 80 bytes, 2 per rune
	got := SanitizeN(long, 61)
	if len(got) != 60 {
		t.Fatalf("len = %d bytes, want 60 (whole runes only)", len(got))
	}
	if got != strings.Repeat("é", 30) {
		t.Errorf("got %q", got)
	}
}

func TestSanitizeN_TrimAfterTruncation(t *testing.T) {
	// Cutting at the budget lands on a space, which must not survive as a
	// trailing character.
	got := SanitizeN("abcd efgh", 5)
	if got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
	if again := SanitizeN(got, 5); again != got {
		t.Errorf("not idempotent: %q -> %q", got, again)
	}
}
