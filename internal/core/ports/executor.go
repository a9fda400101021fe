// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/swagscan/internal/core/domain"
)

// Permit is a unit of concurrency capacity held by one in-flight probe.
// Release is idempotent.
type Permit interface {
	Release()
}

// Prober defines the interface for probing a single target.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Prober interface {
	// Probe issues one request for the task and classifies the response.
	//
	// The permit must be released as soon as the response (or transport error)
	// is obtained, before the body is read or classified.
	//
	// Failures are reported through the returned Outcome, never as a panic
	// or a separate error.
	Probe(ctx context.Context, task domain.Task, permit Permit) domain.Outcome
}

// ProberFactory builds a Prober for the resolved configuration.
type ProberFactory func(cfg *domain.Config) Prober
