//go:build !darwin

package window

import "errors"

type unsupportedSource struct{}

// NewSource returns a Source whose List always fails: live window
// enumeration needs the Quartz window server.
func NewSource() Source { return unsupportedSource{} }

func (unsupportedSource) List() ([]Info, error) {
	return nil, errors.New("window enumeration is only supported on macOS")
}
