// Package focus brings a known browser tab to the front via the OS
// scripting facility. It is a one-shot helper sharing no state with the
// OCR pipeline.
package focus

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// tabMarker identifies the tab to focus by title substring.
const tabMarker = "Migaku Clipboard"

// ErrTabNotFound means the script ran fine but no open tab carried the
// marker. Callers print guidance and exit non-zero; this is not a crash.
var ErrTabNotFound = errors.New(tabMarker + " tab not found")

// The script walks every window and tab of the named browser, activates
// the first tab whose title contains the marker, and optionally replays
// cmd+V through System Events after a short settle delay. It prints
// NOT_FOUND when no tab matched so the caller can tell the outcomes apart
// without parsing AppleScript errors.
const tabScript = `
on run argv
  set browserName to item 1 of argv
  set doPaste to item 2 of argv

  tell application browserName
    activate
    set foundTab to false

    repeat with w in windows
      set ti to 1
      repeat with t in tabs of w
        set theTitle to (title of t) as text
        if theTitle contains "` + tabMarker + `" then
          set active tab index of w to ti
          set index of w to 1
          set foundTab to true
          exit repeat
        end if
        set ti to ti + 1
      end repeat
      if foundTab then exit repeat
    end repeat
  end tell

  if foundTab is false then
    return "NOT_FOUND"
  end if

  if doPaste is "1" then
    delay 0.05
    tell application "System Events"
      keystroke "v" using command down
    end tell
  end if

  return "OK"
end run
`

// runScript shells out to osascript; swapped in tests.
var runScript = func(ctx context.Context, browser, pasteFlag string) (stdout string, err error) {
	cmd := exec.CommandContext(ctx, "osascript", "-e", tabScript, browser, pasteFlag)
	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	if err != nil && errBuf.Len() > 0 {
		err = fmt.Errorf("%w: %s", err, strings.TrimSpace(errBuf.String()))
	}
	return outBuf.String(), err
}

// Tab activates the browser and focuses the marker tab. paste injects a
// cmd+V keystroke after focusing, which needs the Accessibility
// permission. Returns ErrTabNotFound when no tab matched; any other error
// carries the scripting facility's failure (an *exec.ExitError for
// nonzero exits, so callers can propagate the exact code).
func Tab(ctx context.Context, browser string, paste bool) error {
	pasteFlag := "0"
	if paste {
		pasteFlag = "1"
	}

	out, err := runScript(ctx, browser, pasteFlag)
	if strings.TrimSpace(out) == "NOT_FOUND" {
		return ErrTabNotFound
	}
	if err != nil {
		return fmt.Errorf("focus %s tab: %w", browser, err)
	}
	return nil
}
