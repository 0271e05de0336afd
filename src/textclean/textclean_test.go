package textclean

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fps and resolution", "Hello 60FPS world 1920x1080 end", "Hello world end"},
		{"video prefix", "Video:60FPS some text", "some text"},
		{"game prefix", "Game:59FPS dialogue", "dialogue"},
		{"resolution only", "640x480 menu", "menu"},
		{"plain text untouched", "こんにちは", "こんにちは"},
		{"collapses runs", "a   b\t\tc", "a b c"},
		{"single newline kept", "line1\nline2", "line1\nline2"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
		{"fps without count kept", "FPS counter", "FPS counter"},
		{"x between words kept", "a x b", "a x b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Hello 60FPS world 1920x1080 end",
		"Video:60FPS Game:30FPS 800x600",
		"already clean text",
		"  \t mixed \n whitespace \n\n here ",
		"",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
