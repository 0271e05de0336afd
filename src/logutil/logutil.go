package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logFileName  = "window_ocr_debug.log"
	maxSizeBytes = 10 * 1024 * 1024 // 10 MB
	maxArchives  = 3
)

// Setup configures the global logger. When file logging is enabled, log
// lines go to a size-rotated debug file; otherwise they go to stdout,
// which is the daemon's only reporting surface.
func Setup(enableFileLogging bool) {
	log.SetFlags(log.LstdFlags)
	if !enableFileLogging {
		log.SetOutput(os.Stdout)
		return
	}
	rotateIfNeeded()
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, &rotatingWriter{f: f}))
}

type rotatingWriter struct{ f *os.File }

func (w *rotatingWriter) Write(p []byte) (int, error) {
	// naive rotation check per write
	if st, err := w.f.Stat(); err == nil && st.Size()+int64(len(p)) > maxSizeBytes {
		_ = w.f.Close()
		rotateIfNeeded()
		nf, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return 0, err
		}
		w.f = nf
	}
	return w.f.Write(p)
}

func rotateIfNeeded() {
	// If base exceeds max size, rotate: .1, .2, .3 (oldest discarded)
	if st, err := os.Stat(logFileName); err == nil && st.Size() > maxSizeBytes {
		_ = os.Remove(archiveName(maxArchives))
		for i := maxArchives - 1; i >= 1; i-- {
			_ = os.Rename(archiveName(i), archiveName(i+1))
		}
		_ = os.Rename(logFileName, archiveName(1))
	}
}

func archiveName(n int) string { return filepath.Join(".", fmt.Sprintf("%s.%d", logFileName, n)) }

// Preview returns text shortened to max runes with newlines escaped, for
// single-line log output.
func Preview(text string, max int) string {
	escaped := ""
	for _, r := range text {
		switch r {
		case '\n', '\r':
			escaped += "\\n"
		case '\t':
			escaped += "\\t"
		default:
			escaped += string(r)
		}
	}
	runes := []rune(escaped)
	if len(runes) <= max {
		return escaped
	}
	return string(runes[:max]) + "…"
}
