package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultApp     = "DuckStation"
	DefaultHotkey  = "cmd+shift+o"
	DefaultLang    = "ja-JP"
	DefaultBrowser = "Google Chrome"
	EnvPathEnvVar  = "WINDOW_OCR_ENV"
)

// Backend selects which OS text-recognition engine runs.
type Backend string

const (
	BackendAuto     Backend = "auto"
	BackendLiveText Backend = "livetext"
	BackendVision   Backend = "vision"
)

// Level is the Vision recognition quality level. LiveText ignores it.
type Level string

const (
	LevelFast     Level = "fast"
	LevelAccurate Level = "accurate"
)

// CropRect is a normalized crop region expressed as fractions of image
// width/height. Valid iff 0 <= X0 < X1 <= 1 and 0 <= Y0 < Y1 <= 1.
type CropRect struct {
	X0, Y0, X1, Y1 float64
}

// OCR is the per-invocation recognition configuration. Immutable once
// constructed; passed by value through the pipeline.
type OCR struct {
	Backend    Backend
	Level      Level
	Languages  []string
	Crop       *CropRect
	CleanupHUD bool
}

// ParseCrop parses "x0,y0,x1,y1" normalized coordinates.
func ParseCrop(s string) (CropRect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return CropRect{}, fmt.Errorf("crop must be x0,y0,x1,y1, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return CropRect{}, fmt.Errorf("crop component %d: %w", i, err)
		}
		vals[i] = v
	}
	r := CropRect{X0: vals[0], Y0: vals[1], X1: vals[2], Y1: vals[3]}
	if !(0 <= r.X0 && r.X0 < r.X1 && r.X1 <= 1 && 0 <= r.Y0 && r.Y0 < r.Y1 && r.Y1 <= 1) {
		return CropRect{}, fmt.Errorf("crop must satisfy 0<=x0<x1<=1 and 0<=y0<y1<=1, got %q", s)
	}
	return r, nil
}

// ParseBackend validates a backend selector. allowAuto is false for the
// single-image tool, which requires a concrete engine.
func ParseBackend(s string, allowAuto bool) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case BackendAuto:
		if !allowAuto {
			return "", fmt.Errorf("framework must be vision or livetext, got %q", s)
		}
		return BackendAuto, nil
	case BackendLiveText:
		return BackendLiveText, nil
	case BackendVision:
		return BackendVision, nil
	default:
		return "", fmt.Errorf("unknown framework %q", s)
	}
}

// ParseLevel validates a recognition level.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelFast:
		return LevelFast, nil
	case LevelAccurate:
		return LevelAccurate, nil
	default:
		return "", fmt.Errorf("level must be fast or accurate, got %q", s)
	}
}

// Env holds environment-sourced defaults. Command-line flags always win;
// these only seed flag default values.
type Env struct {
	App               string
	Title             string
	Hotkey            string
	Lang              string
	Browser           string
	EnableFileLogging bool
}

// LoadEnv reads defaults from the process environment, optionally seeded
// by a .env file next to the executable (or the file named by
// WINDOW_OCR_ENV).
func LoadEnv() Env {
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	return Env{
		App:               getEnvWithDefault("WINDOW_OCR_APP", DefaultApp),
		Title:             os.Getenv("WINDOW_OCR_TITLE"),
		Hotkey:            getEnvWithDefault("WINDOW_OCR_HOTKEY", DefaultHotkey),
		Lang:              getEnvWithDefault("WINDOW_OCR_LANG", DefaultLang),
		Browser:           getEnvWithDefault("WINDOW_OCR_BROWSER", DefaultBrowser),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
	}
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvPathEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
