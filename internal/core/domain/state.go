package domain

// TaskState represents the lifecycle state of a single probe task.
type TaskState string

const (
	// StateCreated indicates the task was produced by the generator.
	StateCreated TaskState = "created"
	// StateAdmitted indicates the task holds a concurrency permit.
	StateAdmitted TaskState = "admitted"
	// StateProbed indicates the network exchange finished and the permit was released.
	StateProbed TaskState = "probed"
	// StateClassified indicates the response has been classified into an outcome.
	StateClassified TaskState = "classified"
	// StateRecorded indicates a match was persisted to the output file.
	StateRecorded TaskState = "recorded"
	// StateDiscarded indicates the outcome was reported but not persisted.
	StateDiscarded TaskState = "discarded"
)

// IsTerminal reports whether no further transitions are possible.
func (s TaskState) IsTerminal() bool {
	return s == StateRecorded || s == StateDiscarded
}

// FinalState returns the terminal state for an outcome. Only a match that
// was successfully persisted is Recorded.
func FinalState(o Outcome, persisted bool) TaskState {
	if o.Kind == OutcomeMatched && persisted {
		return StateRecorded
	}
	return StateDiscarded
}
