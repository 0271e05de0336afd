// Package afterrun spawns the daemon's optional post-copy command.
package afterrun

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode"
)

// Split breaks a command line into argv. Double and single quotes group
// words; backslash escapes the next character outside single quotes.
// There is no variable expansion and no shell — the command runs directly.
func Split(cmdline string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inWord  bool
		quote   rune // 0, '\'' or '"'
		escaped bool
	)

	for _, r := range cmdline {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if escaped {
		return nil, errors.New("trailing backslash")
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}

// Run starts the command without waiting for it. The daemon must not
// stall on a slow post-copy hook.
func Run(cmdline string) error {
	args, err := Split(cmdline)
	if err != nil {
		return fmt.Errorf("after command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil
	}
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("after command %q: %w", cmdline, err)
	}
	// Reap in the background so the child never zombies.
	go func() { _ = cmd.Wait() }()
	return nil
}
