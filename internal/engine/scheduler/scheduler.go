// Package scheduler runs the fetch and stage pipeline over a resolved install plan.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scheduler fetches and stages packages with bounded concurrency.
type Scheduler struct {
	fetcher ports.BottleFetcher
	stager  ports.Stager
	sink    ports.ProgressSink
	tracer  ports.Tracer

	mu         sync.RWMutex
	taskStatus map[string]domain.PackageStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	fetcher ports.BottleFetcher,
	stager ports.Stager,
	sink ports.ProgressSink,
	tracer ports.Tracer,
) *Scheduler {
	return &Scheduler{
		fetcher:    fetcher,
		stager:     stager,
		sink:       sink,
		tracer:     tracer,
		taskStatus: make(map[string]domain.PackageStatus),
	}
}

// initTaskStatuses resets the status of every planned package to Pending.
func (s *Scheduler) initTaskStatuses(formulae []domain.Formula) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.taskStatus)
	for i := range formulae {
		s.taskStatus[formulae[i].Name] = domain.StatusPending
	}
}

func (s *Scheduler) updateStatus(name string, status domain.PackageStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

// Status returns the last known status of a package in the current or last run.
func (s *Scheduler) Status(name string) (domain.PackageStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.taskStatus[name]
	return status, ok
}

// Run fetches and stages every formula, keeping up to parallelism tasks in flight.
// Outcomes are returned in the order of formulae.
//
// The first failing task stops new launches and cancels the tasks still running.
// Run waits for them to return and reports the first error, tagged with the package name.
func (s *Scheduler) Run(
	ctx context.Context,
	formulae []domain.Formula,
	parallelism int,
) ([]domain.FetchOutcome, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	s.initTaskStatuses(formulae)

	state := s.newRunState(ctx, formulae, parallelism)
	defer state.cancel(nil)

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		// Every launched task sends exactly one result, so this never blocks forever.
		state.handleResult(<-state.resultsCh)
	}

	_ = state.group.Wait()

	if state.firstErr != nil {
		return nil, state.firstErr
	}
	if len(state.ready) > 0 {
		return nil, context.Cause(state.ctx)
	}
	return state.outcomes, nil
}

type result struct {
	index   int
	outcome domain.FetchOutcome
	err     error
}

type schedulerRunState struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	group  errgroup.Group

	formulae    []domain.Formula
	outcomes    []domain.FetchOutcome
	ready       []int
	active      int
	parallelism int
	resultsCh   chan result
	completed   atomic.Int64
	firstErr    error

	s *Scheduler
}

func (s *Scheduler) newRunState(
	ctx context.Context,
	formulae []domain.Formula,
	parallelism int,
) *schedulerRunState {
	ctx, cancel := context.WithCancelCause(ctx)

	ready := make([]int, len(formulae))
	for i := range formulae {
		ready[i] = i
	}

	return &schedulerRunState{
		ctx:         ctx,
		cancel:      cancel,
		formulae:    formulae,
		outcomes:    make([]domain.FetchOutcome, len(formulae)),
		ready:       ready,
		parallelism: parallelism,
		resultsCh:   make(chan result, parallelism),
		s:           s,
	}
}

// stopped reports whether no further tasks may be launched.
func (state *schedulerRunState) stopped() bool {
	return state.firstErr != nil || state.ctx.Err() != nil
}

func (state *schedulerRunState) isDone() bool {
	return state.active == 0 && (len(state.ready) == 0 || state.stopped())
}

func (state *schedulerRunState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && !state.stopped() {
		index := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(state.formulae[index].Name, domain.StatusRunning)

		state.group.Go(func() error {
			outcome, err := state.executeTask(&state.formulae[index])
			state.resultsCh <- result{index: index, outcome: outcome, err: err}
			return nil
		})
	}
}

func (state *schedulerRunState) executeTask(formula *domain.Formula) (domain.FetchOutcome, error) {
	ctx, span := state.s.tracer.Start(state.ctx, formula.Name,
		ports.WithAttribute("package", formula.Name),
		ports.WithAttribute("version", formula.VersionString()),
	)
	defer span.End()

	outcome, err := state.s.fetcher.Fetch(ctx, *formula)
	if err != nil {
		span.RecordError(err)
		return domain.FetchOutcome{}, err
	}
	span.SetAttribute("cached", outcome.Cached)

	state.s.sink.OnPhase(formula.Name, domain.PhaseUnpacking)
	dir, err := state.s.stager.Stage(ctx, outcome.ArchivePath)
	if err != nil {
		span.RecordError(err)
		return domain.FetchOutcome{}, err
	}
	outcome.Name = formula.Name
	outcome.StagingDir = dir
	state.s.sink.OnPhase(formula.Name, domain.PhaseDone)

	done := state.completed.Add(1)
	state.s.sink.OnCompleted(int(done), len(state.formulae))
	return outcome, nil
}

func (state *schedulerRunState) handleResult(res result) {
	state.active--
	name := state.formulae[res.index].Name

	if res.err != nil {
		state.s.updateStatus(name, domain.StatusFailed)
		if state.firstErr != nil {
			// Later failures are usually the cancellation caused by the first one.
			return
		}
		state.firstErr = zerr.With(zerr.Wrap(res.err, "package failed"), "package", name)
		state.cancel(state.firstErr)
		state.s.sink.OnAbort(name, res.err)
		return
	}

	status := domain.StatusCompleted
	if res.outcome.Cached {
		status = domain.StatusCached
	}
	state.s.updateStatus(name, status)
	state.outcomes[res.index] = res.outcome
}
