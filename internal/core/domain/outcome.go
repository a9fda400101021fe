package domain

// OutcomeKind classifies the result of probing a single task.
type OutcomeKind string

const (
	// OutcomeMatched indicates the response body contained the marker.
	OutcomeMatched OutcomeKind = "Matched"
	// OutcomeNotMatched indicates a readable response without the marker.
	OutcomeNotMatched OutcomeKind = "NotMatched"
	// OutcomeTransportError indicates the request or body read failed.
	OutcomeTransportError OutcomeKind = "TransportError"
	// OutcomeFault indicates the task itself failed unexpectedly.
	OutcomeFault OutcomeKind = "Fault"
)

// Outcome is the classified result of one task.
type Outcome struct {
	Kind   OutcomeKind
	Target string
	// Title is the page title of a matched document, if one could be extracted.
	Title string
	Err   error
}

// Matched builds a Matched outcome.
func Matched(target, title string) Outcome {
	return Outcome{Kind: OutcomeMatched, Target: target, Title: title}
}

// NotMatched builds a NotMatched outcome.
func NotMatched(target string) Outcome {
	return Outcome{Kind: OutcomeNotMatched, Target: target}
}

// TransportError builds a TransportError outcome.
func TransportError(target string, err error) Outcome {
	return Outcome{Kind: OutcomeTransportError, Target: target, Err: err}
}

// Fault builds a Fault outcome.
func Fault(target string, err error) Outcome {
	return Outcome{Kind: OutcomeFault, Target: target, Err: err}
}

// Summary aggregates the outcomes of a scan.
type Summary struct {
	Total           int
	Matched         int
	NotMatched      int
	TransportErrors int
	Faults          int
	PersistFailures int
	Skipped         int
	PeakInFlight    int
}

// Record counts a single outcome.
func (s *Summary) Record(o Outcome) {
	switch o.Kind {
	case OutcomeMatched:
		s.Matched++
	case OutcomeNotMatched:
		s.NotMatched++
	case OutcomeTransportError:
		s.TransportErrors++
	case OutcomeFault:
		s.Faults++
	}
}

// Completed returns the number of tasks that produced an outcome.
func (s Summary) Completed() int {
	return s.Matched + s.NotMatched + s.TransportErrors + s.Faults
}
