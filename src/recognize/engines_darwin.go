//go:build darwin

package recognize

/*
#cgo CFLAGS: -x objective-c -fobjc-arc -mmacosx-version-min=13.0
#cgo LDFLAGS: -framework Vision -framework VisionKit -framework ImageIO -framework CoreGraphics -framework Foundation

#include <stdlib.h>

// Implemented in bridge_darwin.m. Both return a malloc'd fragment wire
// string (possibly empty), or NULL on backend failure.
extern char *wocr_vision_recognize(const char *path, int accurate, const char *languages);
extern char *wocr_livetext_recognize(const char *path);
*/
import "C"

import (
	"context"
	"errors"
	"strings"
	"unsafe"

	"window-ocr/src/config"
)

func init() {
	newLiveTextEngine = func() Engine { return liveTextEngine{} }
	newVisionEngine = func(level config.Level, languages []string) Engine {
		return visionEngine{level: level, languages: languages}
	}
}

// liveTextEngine is the VisionKit image analyzer: fast, does its own
// language detection, strongest on CJK text.
type liveTextEngine struct{}

func (liveTextEngine) Name() string { return "livetext" }

func (liveTextEngine) Recognize(ctx context.Context, imagePath string) ([]Fragment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cPath := C.CString(imagePath)
	defer C.free(unsafe.Pointer(cPath))

	res := C.wocr_livetext_recognize(cPath)
	if res == nil {
		return nil, errors.New("image analyzer failed (VisionKit unavailable or unreadable image)")
	}
	defer C.free(unsafe.Pointer(res))
	return parseFragments(C.GoString(res)), nil
}

// visionEngine is VNRecognizeTextRequest with an explicit quality level
// and optional language hints.
type visionEngine struct {
	level     config.Level
	languages []string
}

func (visionEngine) Name() string { return "vision" }

func (e visionEngine) Recognize(ctx context.Context, imagePath string) ([]Fragment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cPath := C.CString(imagePath)
	defer C.free(unsafe.Pointer(cPath))

	var cLangs *C.char
	if hints := VisionHints(e.languages); len(hints) > 0 {
		cLangs = C.CString(strings.Join(hints, ","))
		defer C.free(unsafe.Pointer(cLangs))
	}

	accurate := C.int(0)
	if e.level == config.LevelAccurate {
		accurate = 1
	}

	res := C.wocr_vision_recognize(cPath, accurate, cLangs)
	if res == nil {
		return nil, errors.New("text recognition request failed (unreadable image or Vision error)")
	}
	defer C.free(unsafe.Pointer(res))
	return parseFragments(C.GoString(res)), nil
}
