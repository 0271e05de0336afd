//go:build !darwin

package recognize

import (
	"context"
	"errors"

	"window-ocr/src/config"
)

// The recognition backends are macOS system services. Off-mac builds keep
// the package (and everything above it) compiling; any attempt to run an
// engine reports the platform gap.

func init() {
	newLiveTextEngine = func() Engine { return unsupportedEngine{name: "livetext"} }
	newVisionEngine = func(config.Level, []string) Engine { return unsupportedEngine{name: "vision"} }
}

type unsupportedEngine struct{ name string }

func (e unsupportedEngine) Name() string { return e.name }

func (e unsupportedEngine) Recognize(ctx context.Context, imagePath string) ([]Fragment, error) {
	return nil, errors.New("text recognition is only supported on macOS")
}
