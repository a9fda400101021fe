// Package scanner runs the probe task set through the governor and collects outcomes.
package scanner

import (
	"context"
	"iter"
	"sync"

	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/core/ports"
	"go.trai.ch/swagscan/internal/engine/governor"
	"go.trai.ch/zerr"
)

// ProbeSpanName names the span recorded around each task.
const ProbeSpanName = "probe"

// Scanner fans tasks out to the prober and fans outcomes back in.
type Scanner struct {
	prober   ports.Prober
	sink     ports.MatchSink
	reporter ports.Reporter
	tracer   ports.Tracer
	logger   ports.Logger

	onTransition TransitionFunc
}

// TransitionFunc observes task state changes. It is called concurrently from
// task goroutines and must be safe for concurrent use.
type TransitionFunc func(task domain.Task, st domain.TaskState)

// NewScanner creates a new Scanner with the given dependencies.
func NewScanner(
	prober ports.Prober,
	sink ports.MatchSink,
	reporter ports.Reporter,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scanner {
	return &Scanner{
		prober:   prober,
		sink:     sink,
		reporter: reporter,
		tracer:   tracer,
		logger:   logger,
	}
}

// OnTransition registers fn to observe every task state change.
// No per-task state is retained once a task reaches a terminal state.
func (s *Scanner) OnTransition(fn TransitionFunc) *Scanner {
	s.onTransition = fn
	return s
}

func (s *Scanner) transition(task domain.Task, st domain.TaskState) {
	if s.onTransition != nil {
		s.onTransition(task, st)
	}
}

// Run probes every host×path combination with at most workers requests in
// flight and returns once every dispatched task has reported.
//
// Cancelling ctx stops admission only. Requests already in flight run to
// completion; undispatched tasks are counted as skipped and Run returns
// domain.ErrScanInterrupted.
func (s *Scanner) Run(ctx context.Context, hosts, paths []string, workers int) (domain.Summary, error) {
	gov := governor.New(workers)
	total := domain.CountTargets(hosts, paths)

	s.reporter.OnPlan(total, gov.Limit())

	state := &runState{
		s:          s,
		ctx:        context.WithoutCancel(ctx),
		resultsCh:  make(chan result, gov.Limit()),
		dispatched: make(chan int, 1),
		summary:    domain.Summary{Total: total},
	}

	go state.dispatch(ctx, gov, domain.Targets(hosts, paths))
	state.collect()

	state.summary.Skipped = total - state.summary.Completed()
	state.summary.PeakInFlight = gov.Peak()
	s.reporter.OnComplete(state.summary)

	if state.summary.Skipped > 0 {
		return state.summary, domain.ErrScanInterrupted
	}
	return state.summary, nil
}

type result struct {
	task       domain.Task
	outcome    domain.Outcome
	persistErr error
}

type runState struct {
	s          *Scanner
	ctx        context.Context
	resultsCh  chan result
	dispatched chan int
	summary    domain.Summary
}

// dispatch admits tasks one permit at a time and reports how many it started.
func (state *runState) dispatch(ctx context.Context, gov *governor.Governor, tasks iter.Seq[domain.Task]) {
	n := 0
	for task := range tasks {
		if ctx.Err() != nil {
			break
		}
		state.s.transition(task, domain.StateCreated)

		permit, err := gov.Acquire(ctx)
		if err != nil {
			break
		}
		state.s.transition(task, domain.StateAdmitted)

		n++
		go state.executeTask(task, permit)
	}
	state.dispatched <- n
}

// collect drains results until the dispatcher is finished and every
// started task has reported.
func (state *runState) collect() {
	received := 0
	started := -1

	for started < 0 || received < started {
		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
			received++
		case started = <-state.dispatched:
		}
	}
}

func (state *runState) executeTask(task domain.Task, permit *governor.Permit) {
	target := task.URL()

	// The span must end before the result is sent so a finished Run has
	// recorded every probe span.
	res := func() (res result) {
		ctx, span := state.s.tracer.Start(state.ctx, ProbeSpanName)
		defer span.End()
		span.SetAttribute(domain.TargetAttribute, target)

		defer permit.Release()
		defer zerr.Defer(func(err error) {
			err = zerr.With(zerr.Wrap(err, domain.ErrTaskPanicked.Error()), "target", target)
			span.RecordError(err)
			res = result{outcome: domain.Fault(target, err)}
		})

		outcome := state.s.prober.Probe(ctx, task, &trackedPermit{
			permit: permit,
			onRelease: func() {
				state.s.transition(task, domain.StateProbed)
			},
		})
		state.s.transition(task, domain.StateClassified)

		span.SetAttribute("outcome", string(outcome.Kind))
		if outcome.Err != nil {
			span.RecordError(outcome.Err)
		}

		if outcome.Kind != domain.OutcomeMatched {
			return result{outcome: outcome}
		}
		err := state.s.sink.Append(outcome.Target)
		if err != nil {
			span.RecordError(err)
		}
		return result{outcome: outcome, persistErr: err}
	}()

	res.task = task
	state.resultsCh <- res
}

func (state *runState) handleResult(res result) {
	state.summary.Record(res.outcome)
	state.s.reporter.OnOutcome(res.outcome)

	if res.persistErr != nil {
		state.summary.PersistFailures++
		state.s.logger.Error(res.persistErr)
	}
	state.s.transition(res.task, domain.FinalState(res.outcome, res.persistErr == nil))
}

// trackedPermit marks the task as probed the first time the prober releases it.
type trackedPermit struct {
	permit    *governor.Permit
	once      sync.Once
	onRelease func()
}

func (p *trackedPermit) Release() {
	p.once.Do(func() {
		p.permit.Release()
		p.onRelease()
	})
}
