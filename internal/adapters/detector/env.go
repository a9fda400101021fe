// Package detector provides environment detection for log format selection.
package detector

import (
	"io"
	"os"

	"go.trai.ch/swagscan/internal/core/domain"
	"golang.org/x/term"
)

// OutputMode represents the log rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePretty forces human-readable colored logs.
	ModePretty
	// ModeJSON forces structured JSON logs.
	ModeJSON
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stderr is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	return classify(isTTY, os.Getenv("CI"))
}

func classify(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeJSON
	}
	return ModePretty
}

// ResolveMode applies the configured log format to auto-detection.
func ResolveMode(autoDetected OutputMode, format domain.LogFormat) OutputMode {
	switch format {
	case domain.LogFormatPretty:
		return ModePretty
	case domain.LogFormatJSON:
		return ModeJSON
	default:
		return autoDetected
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
