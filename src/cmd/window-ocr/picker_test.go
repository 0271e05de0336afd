package main

import (
	"strings"
	"testing"

	"window-ocr/src/window"
)

func pickerWindows() []window.Info {
	return []window.Info{
		{ID: 101, Owner: "DuckStation", Title: "Persona"},
		{ID: 102, Owner: "Safari", Title: "Docs"},
		{ID: 103, Owner: "Terminal", Title: ""},
	}
}

func TestPickInteractivelyValidSelection(t *testing.T) {
	var out strings.Builder
	got, err := pickInteractively(pickerWindows(), strings.NewReader("1\n"), &out)
	if err != nil {
		t.Fatalf("pickInteractively: %v", err)
	}
	if got.ID != 102 {
		t.Errorf("picked window %d, want 102", got.ID)
	}
	if !strings.Contains(out.String(), "Select a window:") {
		t.Error("missing list header")
	}
	if !strings.Contains(out.String(), "[103] Terminal — <no title> (layer 0)") {
		t.Errorf("untitled window not labeled, output:\n%s", out.String())
	}
}

func TestPickInteractivelyRepromptsOnInvalidInput(t *testing.T) {
	var out strings.Builder
	got, err := pickInteractively(pickerWindows(), strings.NewReader("banana\n7\n-1\n0\n"), &out)
	if err != nil {
		t.Fatalf("pickInteractively: %v", err)
	}
	if got.ID != 101 {
		t.Errorf("picked window %d, want 101", got.ID)
	}
	if n := strings.Count(out.String(), "Invalid selection. Try again."); n != 3 {
		t.Errorf("re-prompted %d times, want 3", n)
	}
}

func TestPickInteractivelyInputEnds(t *testing.T) {
	var out strings.Builder
	if _, err := pickInteractively(pickerWindows(), strings.NewReader(""), &out); err == nil {
		t.Error("expected error when input ends without a selection")
	}
}

func TestPickInteractivelyEmptyList(t *testing.T) {
	var out strings.Builder
	if _, err := pickInteractively(nil, strings.NewReader("0\n"), &out); err == nil {
		t.Error("expected error for empty window list")
	}
}
