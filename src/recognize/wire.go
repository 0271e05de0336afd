package recognize

import (
	"strconv"
	"strings"
)

// The cgo bridges hand results back as a flat string: records separated
// by 0x1e, each record "confidence<0x1f>text". Keeping the wire format in
// plain Go keeps it testable off-mac.
const (
	recordSep = "\x1e"
	fieldSep  = "\x1f"
)

func parseFragments(wire string) []Fragment {
	if wire == "" {
		return nil
	}
	var frags []Fragment
	for _, rec := range strings.Split(wire, recordSep) {
		if rec == "" {
			continue
		}
		conf := 0.0
		text := rec
		if i := strings.Index(rec, fieldSep); i >= 0 {
			if v, err := strconv.ParseFloat(rec[:i], 64); err == nil {
				conf = v
			}
			text = rec[i+len(fieldSep):]
		}
		frags = append(frags, Fragment{Text: text, Confidence: conf})
	}
	return frags
}
