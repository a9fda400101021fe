// Package linear provides a line-per-outcome reporter for terminals and CI logs.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/swagscan/internal/adapters/detector"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/ui/output"
	"go.trai.ch/swagscan/internal/ui/style"
)

// Reporter implements ports.Reporter. Matches go to stdout so they can be
// piped; everything else goes to stderr. Write errors are ignored.
type Reporter struct {
	mu     sync.Mutex
	stdout *termenv.Output
	stderr *termenv.Output
}

// NewReporter creates a Reporter. Nil writers default to the process streams.
// Each stream is colored only when it is a terminal.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Reporter{
		stdout: output.New(stdout, detector.IsTerminal(stdout)),
		stderr: output.New(stderr, detector.IsTerminal(stderr)),
	}
}

// OnPlan prints the size of the task set.
func (r *Reporter) OnPlan(total, workers int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := fmt.Sprintf("Scanning %d target(s) with %d worker(s)", total, workers)
	r.printLocked(r.stderr, msg, termenv.ANSIMagenta)
}

// OnOutcome prints one line for the outcome.
func (r *Reporter) OnOutcome(o domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch o.Kind {
	case domain.OutcomeMatched:
		msg := style.Check + " Document found at: " + o.Target
		if o.Title != "" {
			msg += " (" + o.Title + ")"
		}
		r.printLocked(r.stdout, msg, termenv.ANSIGreen)
	case domain.OutcomeNotMatched:
		r.printLocked(r.stderr, style.Cross+" Document not found at: "+o.Target, termenv.ANSIBrightBlack)
	case domain.OutcomeTransportError:
		r.printLocked(r.stderr, fmt.Sprintf("%s Request failed for %s: %v", style.Warning, o.Target, o.Err), termenv.ANSIYellow)
	case domain.OutcomeFault:
		r.printLocked(r.stderr, fmt.Sprintf("%s Task panicked for %s: %v", style.Cross, o.Target, o.Err), termenv.ANSIRed)
	}
}

// OnComplete prints the run totals.
func (r *Reporter) OnComplete(s domain.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := fmt.Sprintf(
		"Done: %d target(s), %d matched, %d not matched, %d failed, %d panicked, %d not saved, %d skipped (peak %d in flight)",
		s.Total, s.Matched, s.NotMatched, s.TransportErrors, s.Faults, s.PersistFailures, s.Skipped, s.PeakInFlight,
	)
	r.printLocked(r.stderr, msg, termenv.ANSIMagenta)
}

// printLocked must be called with r.mu held.
func (r *Reporter) printLocked(out *termenv.Output, msg string, color termenv.ANSIColor) {
	styled := out.String(msg).Foreground(color)
	_, _ = out.WriteString(styled.String() + "\n")
}
