// Package window locates on-screen application windows. The OS query is
// behind the Source interface; the match/pick logic is pure and shared by
// every entry point.
package window

import (
	"fmt"
	"image"
	"strings"
)

// NormalLayer is the stacking layer of an ordinary, non-overlay window.
const NormalLayer = 0

// ID identifies a window for the lifetime of the current on-screen state.
// IDs are never cached across pipeline runs.
type ID uint32

// Info describes one on-screen window as reported by the OS.
type Info struct {
	ID     ID
	Owner  string
	Title  string
	Layer  int
	Bounds image.Rectangle
}

// Label renders the window the way the interactive picker lists it.
func (w Info) Label() string {
	title := w.Title
	if title == "" {
		title = "<no title>"
	}
	return fmt.Sprintf("[%d] %s — %s (layer %d)", w.ID, w.Owner, title, w.Layer)
}

// Source is the OS window-enumeration service.
type Source interface {
	// List returns the on-screen, non-desktop windows in OS enumeration
	// order (front to back on macOS).
	List() ([]Info, error)
}

// Match reports whether w's owner contains appSubstr and its title
// contains titleSubstr, both case-insensitive. Empty needles match.
func Match(w Info, appSubstr, titleSubstr string) bool {
	return containsFold(w.Owner, appSubstr) && containsFold(w.Title, titleSubstr)
}

// Filter returns all windows matching the substrings, preserving order.
func Filter(wins []Info, appSubstr, titleSubstr string) []Info {
	var out []Info
	for _, w := range wins {
		if Match(w, appSubstr, titleSubstr) {
			out = append(out, w)
		}
	}
	return out
}

// FirstCapturable returns the first window, in enumeration order, that
// matches the substrings, sits on the normal layer and has a usable
// identifier. The enumeration order is OS-defined; ambiguous filters are
// resolved by whatever the OS lists first. A false result is a normal
// not-found outcome, not an error.
func FirstCapturable(wins []Info, appSubstr, titleSubstr string) (Info, bool) {
	for _, w := range wins {
		if !Match(w, appSubstr, titleSubstr) {
			continue
		}
		if w.Layer != NormalLayer || w.ID == 0 {
			continue
		}
		return w, true
	}
	return Info{}, false
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
