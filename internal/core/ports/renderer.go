package ports

import "go.trai.ch/swagscan/internal/core/domain"

// Reporter presents scan progress and outcomes to the user.
// Implementations must be safe for concurrent use and must never fail the scan.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Reporter interface {
	// OnPlan is called once before any task is dispatched.
	OnPlan(total, workers int)

	// OnOutcome is called exactly once per completed task.
	OnOutcome(outcome domain.Outcome)

	// OnComplete is called after every dispatched task has reported.
	OnComplete(summary domain.Summary)
}
