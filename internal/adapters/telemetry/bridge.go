package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/swagscan/internal/core/domain"
)

// SpanStats summarizes finished probe spans.
type SpanStats struct {
	Probes  int
	Failed  int
	Slowest string
	Longest time.Duration
}

// Bridge implements sdktrace.SpanProcessor and aggregates probe timings.
// Only spans carrying domain.TargetAttribute are counted.
type Bridge struct {
	mu    sync.Mutex
	stats SpanStats
}

// NewBridge returns a new Bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Stats returns a copy of the current statistics.
func (b *Bridge) Stats() SpanStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records a finished span if it carries a target.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	var target string
	for _, kv := range s.Attributes() {
		if string(kv.Key) == domain.TargetAttribute {
			target = kv.Value.AsString()
			break
		}
	}
	if target == "" {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())

	b.mu.Lock()
	defer b.mu.Unlock()

	b.stats.Probes++
	if s.Status().Code == codes.Error {
		b.stats.Failed++
	}
	if b.stats.Slowest == "" || elapsed > b.stats.Longest {
		b.stats.Longest = elapsed
		b.stats.Slowest = target
	}
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
