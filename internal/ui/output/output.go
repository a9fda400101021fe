// Package output builds termenv outputs with the shared color rules:
// NO_COLOR always wins, interactive writers get the detected terminal
// profile, and everything else is left uncolored.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// NoColorEnv disables all color output when set to a non-empty value.
const NoColorEnv = "NO_COLOR"

// Profile returns the color profile for a writer.
func Profile(interactive bool) termenv.Profile {
	if os.Getenv(NoColorEnv) != "" {
		return termenv.Ascii
	}
	if interactive {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// New creates a termenv.Output for w. A nil writer means stderr.
func New(w io.Writer, interactive bool) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(interactive)),
		termenv.WithTTY(true),
	)
}
