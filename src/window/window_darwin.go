//go:build darwin

package window

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>
#include <string.h>

typedef struct {
	uint32_t number;
	int32_t  layer;
	int32_t  x, y, w, h;
	char     owner[256];
	char     title[256];
} wocr_window_t;

static void wocr_copy_string(CFDictionaryRef info, CFStringRef key, char *dst, size_t cap) {
	dst[0] = '\0';
	CFStringRef s = (CFStringRef)CFDictionaryGetValue(info, key);
	if (s == NULL) {
		return;
	}
	CFStringGetCString(s, dst, cap, kCFStringEncodingUTF8);
}

static void wocr_copy_int(CFDictionaryRef info, CFStringRef key, int32_t *out) {
	CFNumberRef n = (CFNumberRef)CFDictionaryGetValue(info, key);
	if (n == NULL) {
		return;
	}
	CFNumberGetValue(n, kCFNumberSInt32Type, out);
}

// Fills up to cap entries with on-screen, non-desktop windows in the
// order CGWindowList reports them. Returns the count, or -1 when the
// window list query itself fails.
static int wocr_list_windows(wocr_window_t *out, int cap) {
	CFArrayRef wins = CGWindowListCopyWindowInfo(
		kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
		kCGNullWindowID);
	if (wins == NULL) {
		return -1;
	}

	CFIndex n = CFArrayGetCount(wins);
	int count = 0;
	for (CFIndex i = 0; i < n && count < cap; i++) {
		CFDictionaryRef info = (CFDictionaryRef)CFArrayGetValueAtIndex(wins, i);
		wocr_window_t *w = &out[count];
		memset(w, 0, sizeof(*w));

		int32_t number = 0;
		wocr_copy_int(info, kCGWindowNumber, &number);
		w->number = (uint32_t)number;
		wocr_copy_int(info, kCGWindowLayer, &w->layer);
		wocr_copy_string(info, kCGWindowOwnerName, w->owner, sizeof(w->owner));
		wocr_copy_string(info, kCGWindowName, w->title, sizeof(w->title));

		CFDictionaryRef bounds = (CFDictionaryRef)CFDictionaryGetValue(info, kCGWindowBounds);
		if (bounds != NULL) {
			CGRect r;
			if (CGRectMakeWithDictionaryRepresentation(bounds, &r)) {
				w->x = (int32_t)r.origin.x;
				w->y = (int32_t)r.origin.y;
				w->w = (int32_t)r.size.width;
				w->h = (int32_t)r.size.height;
			}
		}
		count++;
	}
	CFRelease(wins);
	return count;
}
*/
import "C"

import (
	"errors"
	"image"
)

const maxWindows = 512

type quartzSource struct{}

// NewSource returns the live Quartz window list.
func NewSource() Source { return quartzSource{} }

func (quartzSource) List() ([]Info, error) {
	buf := make([]C.wocr_window_t, maxWindows)
	n := C.wocr_list_windows(&buf[0], C.int(len(buf)))
	if n < 0 {
		return nil, errors.New("window list query failed (CGWindowListCopyWindowInfo returned NULL)")
	}

	wins := make([]Info, 0, int(n))
	for i := 0; i < int(n); i++ {
		w := buf[i]
		x, y := int(w.x), int(w.y)
		wins = append(wins, Info{
			ID:     ID(w.number),
			Owner:  C.GoString(&w.owner[0]),
			Title:  C.GoString(&w.title[0]),
			Layer:  int(w.layer),
			Bounds: image.Rect(x, y, x+int(w.w), y+int(w.h)),
		})
	}
	return wins, nil
}
