// focus-tab brings the Migaku Clipboard browser tab to the front and
// optionally replays a paste keystroke.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"window-ocr/src/config"
	"window-ocr/src/focus"
)

type options struct {
	browser string
	paste   bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	env := config.LoadEnv()

	opts := &options{}
	cmd := &cobra.Command{
		Use:           "focus-tab",
		Short:         "Focus the Migaku Clipboard browser tab",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return focus.Tab(cmd.Context(), opts.browser, opts.paste)
		},
	}
	cmd.Flags().StringVar(&opts.browser, "browser", env.Browser, "Browser app name (Google Chrome, Brave Browser, ...)")
	cmd.Flags().BoolVar(&opts.paste, "paste", false, "Send cmd+V after focusing")

	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, focus.ErrTabNotFound):
		fmt.Println("Migaku Clipboard tab not found. Open it once (Migaku icon → Clipboard) and leave it open.")
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		return 1
	}
}
