package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"window-ocr/src/window"
)

// pickInteractively prints a numbered window list and reads a selection
// index, re-prompting on anything that is not a valid index. Errors only
// when the input stream ends.
func pickInteractively(wins []window.Info, in io.Reader, out io.Writer) (window.Info, error) {
	if len(wins) == 0 {
		return window.Info{}, fmt.Errorf("no windows to choose from")
	}

	fmt.Fprintln(out, "Select a window:")
	for i, w := range wins {
		fmt.Fprintf(out, "%3d: %s\n", i, w.Label())
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter number: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return window.Info{}, fmt.Errorf("read selection: %w", err)
			}
			return window.Info{}, fmt.Errorf("no selection made")
		}
		idx, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && idx >= 0 && idx < len(wins) {
			return wins[idx], nil
		}
		fmt.Fprintln(out, "Invalid selection. Try again.")
	}
}
