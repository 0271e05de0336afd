// Package textclean strips on-screen overlay artifacts from recognized
// text: frame-rate counters and resolution strings that emulators draw on
// top of the frame and that the OCR engine happily reads back.
package textclean

import (
	"regexp"
	"strings"
)

var (
	// "60FPS", "Video:60FPS", "Game:59FPS", "1920x1080"
	hudPattern        = regexp.MustCompile(`(?:\b(?:Video:|Game:)?\d+FPS\b|\b\d+x\d+\b)`)
	whitespacePattern = regexp.MustCompile(`\s{2,}`)
)

// Clean removes overlay tokens, collapses whitespace runs into a single
// space and trims. Cleaning already-clean text is a no-op.
func Clean(text string) string {
	out := hudPattern.ReplaceAllString(text, "")
	out = whitespacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
