// Package hotkey registers one global key chord through the OS event
// hook. The callback only enqueues work; the daemon's worker does the
// heavy lifting.
package hotkey

import (
	"fmt"
	"log"
	"strings"
	"sync"

	gohook "github.com/robotn/gohook"
)

// Listen registers the chord (e.g. "cmd+shift+o") and invokes callback
// from the hook goroutine on every full press. Requires the Accessibility
// permission on macOS. Returns an error when the chord has no mappable
// keys; Stop releases the hook.
func Listen(hotkeyConfig string, callback func()) error {
	keys := parseHotkey(hotkeyConfig)

	type keyState struct {
		name     string
		rawcodes []uint16
		pressed  bool
	}

	var keyStates []keyState
	for _, keyName := range keys {
		rawcodes := keyNameToRawcodes(keyName)
		if len(rawcodes) == 0 {
			return fmt.Errorf("cannot map key %q in hotkey %q", keyName, hotkeyConfig)
		}
		keyStates = append(keyStates, keyState{name: keyName, rawcodes: rawcodes})
	}
	if len(keyStates) == 0 {
		return fmt.Errorf("no keys in hotkey %q", hotkeyConfig)
	}

	log.Printf("hotkey listener configured for: %s", hotkeyConfig)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic in hotkey goroutine: %v", r)
			}
		}()

		evChan := gohook.Start()
		if evChan == nil {
			log.Printf("ERROR: event hook failed to start (grant Accessibility permission to your terminal)")
			return
		}

		var mu sync.Mutex
		for ev := range evChan {
			if ev.Kind != gohook.KeyDown && ev.Kind != gohook.KeyUp {
				continue
			}

			mu.Lock()
			for i := range keyStates {
				for _, rawcode := range keyStates[i].rawcodes {
					if ev.Rawcode == rawcode {
						keyStates[i].pressed = ev.Kind == gohook.KeyDown
						break
					}
				}
			}

			if ev.Kind != gohook.KeyDown {
				mu.Unlock()
				continue
			}

			allPressed := true
			for i := range keyStates {
				if !keyStates[i].pressed {
					allPressed = false
					break
				}
			}
			if allPressed {
				// Reset so holding the chord fires once per full press.
				for i := range keyStates {
					keyStates[i].pressed = false
				}
				mu.Unlock()
				if callback != nil {
					callback()
				}
				continue
			}
			mu.Unlock()
		}
		log.Printf("hotkey event channel closed")
	}()

	return nil
}

// Stop releases the OS event hook. Called once, at daemon shutdown.
func Stop() {
	gohook.End()
}

// parseHotkey converts a chord like "Cmd+Shift+O" to normalized key names.
func parseHotkey(hotkeyConfig string) []string {
	parts := strings.Split(strings.ToLower(hotkeyConfig), "+")
	var keys []string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch part {
		case "ctrl", "control":
			keys = append(keys, "ctrl")
		case "alt", "opt", "option":
			keys = append(keys, "alt")
		case "shift":
			keys = append(keys, "shift")
		case "cmd", "command", "win", "super":
			keys = append(keys, "cmd")
		default:
			keys = append(keys, part)
		}
	}

	return keys
}

// keyNameToRawcodes maps a key name to macOS virtual keycodes (kVK_*).
// Modifiers include both left and right variants.
func keyNameToRawcodes(keyName string) []uint16 {
	keyName = strings.ToLower(strings.TrimSpace(keyName))

	switch keyName {
	// Modifier keys
	case "cmd", "command", "win", "super":
		return []uint16{55, 54} // kVK_Command, kVK_RightCommand
	case "shift":
		return []uint16{56, 60} // kVK_Shift, kVK_RightShift
	case "alt", "opt", "option":
		return []uint16{58, 61} // kVK_Option, kVK_RightOption
	case "ctrl", "control":
		return []uint16{59, 62} // kVK_Control, kVK_RightControl

	// Letter keys (kVK_ANSI_*)
	case "a":
		return []uint16{0}
	case "b":
		return []uint16{11}
	case "c":
		return []uint16{8}
	case "d":
		return []uint16{2}
	case "e":
		return []uint16{14}
	case "f":
		return []uint16{3}
	case "g":
		return []uint16{5}
	case "h":
		return []uint16{4}
	case "i":
		return []uint16{34}
	case "j":
		return []uint16{38}
	case "k":
		return []uint16{40}
	case "l":
		return []uint16{37}
	case "m":
		return []uint16{46}
	case "n":
		return []uint16{45}
	case "o":
		return []uint16{31}
	case "p":
		return []uint16{35}
	case "q":
		return []uint16{12}
	case "r":
		return []uint16{15}
	case "s":
		return []uint16{1}
	case "t":
		return []uint16{17}
	case "u":
		return []uint16{32}
	case "v":
		return []uint16{9}
	case "w":
		return []uint16{13}
	case "x":
		return []uint16{7}
	case "y":
		return []uint16{16}
	case "z":
		return []uint16{6}

	// Number row (kVK_ANSI_0..9)
	case "0":
		return []uint16{29}
	case "1":
		return []uint16{18}
	case "2":
		return []uint16{19}
	case "3":
		return []uint16{20}
	case "4":
		return []uint16{21}
	case "5":
		return []uint16{23}
	case "6":
		return []uint16{22}
	case "7":
		return []uint16{26}
	case "8":
		return []uint16{28}
	case "9":
		return []uint16{25}

	// Function keys
	case "f1":
		return []uint16{122}
	case "f2":
		return []uint16{120}
	case "f3":
		return []uint16{99}
	case "f4":
		return []uint16{118}
	case "f5":
		return []uint16{96}
	case "f6":
		return []uint16{97}
	case "f7":
		return []uint16{98}
	case "f8":
		return []uint16{100}
	case "f9":
		return []uint16{101}
	case "f10":
		return []uint16{109}
	case "f11":
		return []uint16{103}
	case "f12":
		return []uint16{111}
	case "f13":
		return []uint16{105}
	case "f14":
		return []uint16{107}
	case "f15":
		return []uint16{113}
	case "f16":
		return []uint16{106}
	case "f17":
		return []uint16{64}
	case "f18":
		return []uint16{79}
	case "f19":
		return []uint16{80}
	case "f20":
		return []uint16{90}

	// Common special keys
	case "space":
		return []uint16{49}
	case "enter", "return":
		return []uint16{36}
	case "esc", "escape":
		return []uint16{53}
	case "tab":
		return []uint16{48}
	case "backspace", "delete", "del":
		return []uint16{51}
	case "home":
		return []uint16{115}
	case "end":
		return []uint16{119}
	case "pageup", "pgup":
		return []uint16{116}
	case "pagedown", "pgdn":
		return []uint16{121}

	// Arrow keys
	case "left":
		return []uint16{123}
	case "right":
		return []uint16{124}
	case "down":
		return []uint16{125}
	case "up":
		return []uint16{126}

	default:
		return nil
	}
}
