// Package recognize adapts the two OS text-recognition backends behind a
// single interface and implements the auto fallback policy.
package recognize

import (
	"context"
	"fmt"
	"log"
	"strings"

	"window-ocr/src/config"
)

// Fragment is one recognized text run, in backend detection order. The
// backends also report bounding boxes; those are discarded at the bridge
// since nothing downstream consumes them.
type Fragment struct {
	Text       string
	Confidence float64
}

// Engine is one OS text-recognition backend.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, imagePath string) ([]Fragment, error)
}

// Engine constructors are variables so tests can substitute fakes for
// the cgo bridges. The platform files assign the real ones in init.
var (
	newLiveTextEngine func() Engine
	newVisionEngine   func(level config.Level, languages []string) Engine
)

// visionLanguages is the tag set the Vision backend accepts as explicit
// recognition-language hints. Other tags (ja-JP included) work better
// through Vision's own auto-detection.
var visionLanguages = map[string]bool{
	"en-US": true,
	"fr-FR": true,
	"it-IT": true,
	"de-DE": true,
	"es-ES": true,
	"pt-BR": true,
}

// VisionHints restricts the configured languages to the Vision supported
// set. If the primary (first) tag is unsupported the hint list is omitted
// entirely and the backend auto-detects.
func VisionHints(languages []string) []string {
	if len(languages) == 0 || !visionLanguages[languages[0]] {
		return nil
	}
	var hints []string
	for _, lang := range languages {
		if visionLanguages[lang] {
			hints = append(hints, lang)
		}
	}
	return hints
}

// Join concatenates non-blank fragments in backend order, no separator,
// and trims the ends. An empty result means "no text found".
func Join(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		b.WriteString(f.Text)
	}
	return strings.TrimSpace(b.String())
}

// Text runs the configured backend on the image and returns the joined
// fragment text. For the auto policy: livetext first; on an error or an
// empty result, one vision attempt on the same image. Backend calls are
// sequential, never concurrent — the engines are stateful OS resources.
func Text(ctx context.Context, imagePath string, cfg config.OCR) (string, error) {
	switch cfg.Backend {
	case config.BackendLiveText:
		return engineText(ctx, newLiveTextEngine(), imagePath)
	case config.BackendVision:
		return engineText(ctx, newVisionEngine(cfg.Level, cfg.Languages), imagePath)
	case config.BackendAuto, "":
		text, err := engineText(ctx, newLiveTextEngine(), imagePath)
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			log.Printf("livetext failed, falling back to vision: %v", err)
		}
		return engineText(ctx, newVisionEngine(cfg.Level, cfg.Languages), imagePath)
	default:
		return "", fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func engineText(ctx context.Context, e Engine, imagePath string) (string, error) {
	frags, err := e.Recognize(ctx, imagePath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.Name(), err)
	}
	return Join(frags), nil
}
