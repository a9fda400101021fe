// Package governor implements admission control for concurrent probes.
package governor

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/swagscan/internal/core/domain"
	"golang.org/x/sync/semaphore"
)

// Governor caps the number of permits outstanding at any instant.
type Governor struct {
	sem      *semaphore.Weighted
	limit    int
	inFlight atomic.Int64
	peak     atomic.Int64
}

// New creates a Governor admitting at most limit concurrent holders.
// A non-positive limit falls back to domain.DefaultWorkers.
func New(limit int) *Governor {
	if limit <= 0 {
		limit = domain.DefaultWorkers
	}
	return &Governor{
		sem:   semaphore.NewWeighted(int64(limit)),
		limit: limit,
	}
}

// Limit returns the configured capacity.
func (g *Governor) Limit() int {
	return g.limit
}

// Acquire blocks until a unit of capacity is free or ctx is done.
func (g *Governor) Acquire(ctx context.Context) (*Permit, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	n := g.inFlight.Add(1)
	for {
		p := g.peak.Load()
		if n <= p || g.peak.CompareAndSwap(p, n) {
			break
		}
	}

	return &Permit{g: g}, nil
}

// InFlight returns the number of permits currently held.
func (g *Governor) InFlight() int {
	return int(g.inFlight.Load())
}

// Peak returns the highest number of permits held at once.
func (g *Governor) Peak() int {
	return int(g.peak.Load())
}

// Permit is one unit of capacity. It implements ports.Permit.
type Permit struct {
	g    *Governor
	once sync.Once
}

// Release returns the capacity to the Governor. Calls after the first are no-ops.
func (p *Permit) Release() {
	p.once.Do(func() {
		// Decrement before releasing so InFlight never exceeds the limit.
		p.g.inFlight.Add(-1)
		p.g.sem.Release(1)
	})
}
