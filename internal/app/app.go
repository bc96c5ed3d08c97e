// Package app implements the application layer for samogon.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/samogon/internal/engine/resolver"
	"go.trai.ch/samogon/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	repos     ports.RepositoryLoader
	scheduler *scheduler.Scheduler
	confirmer ports.Confirmer
	sink      ports.ProgressSink
	tracer    ports.Tracer
	logger    ports.Logger
	downloads ports.Cleaner
	index     ports.Cleaner
	jobs      int
}

// New creates a new App instance.
// jobs is the default fetch parallelism used when InstallOptions.Jobs is not set.
func New(
	repos ports.RepositoryLoader,
	sched *scheduler.Scheduler,
	confirmer ports.Confirmer,
	sink ports.ProgressSink,
	tracer ports.Tracer,
	log ports.Logger,
	downloads ports.Cleaner,
	index ports.Cleaner,
	jobs int,
) *App {
	return &App{
		repos:     repos,
		scheduler: sched,
		confirmer: confirmer,
		sink:      sink,
		tracer:    tracer,
		logger:    log,
		downloads: downloads,
		index:     index,
		jobs:      jobs,
	}
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// Yes skips the confirmation prompt.
	Yes bool
	// Jobs overrides the number of concurrent fetches when positive.
	Jobs int
}

// Install resolves names, asks for confirmation and fetches and stages every package
// of the plan. The outcomes are returned in install order.
func (a *App) Install(ctx context.Context, names []string, opts InstallOptions) ([]domain.FetchOutcome, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoPackagesSpecified
	}

	ctx, span := a.tracer.Start(ctx, "install", ports.WithAttribute("requested", len(names)))
	defer span.End()

	plan, err := a.plan(ctx, names)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !opts.Yes {
		ok, err := a.confirmer.Confirm(ctx, plan)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to confirm install plan")
		}
		if !ok {
			return nil, domain.ErrInstallAborted
		}
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = a.jobs
	}

	a.sink.OnPlan(plan)
	outcomes, err := a.scheduler.Run(ctx, plan, jobs)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Join(domain.ErrInstallFailed, err)
	}

	for _, outcome := range outcomes {
		a.logger.Debug(fmt.Sprintf("%s staged in %s", outcome.Name, outcome.StagingDir))
	}
	return outcomes, nil
}

// Deps returns the requested packages and their dependencies in install order.
func (a *App) Deps(ctx context.Context, names []string) ([]domain.Formula, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoPackagesSpecified
	}

	ctx, span := a.tracer.Start(ctx, "deps", ports.WithAttribute("requested", len(names)))
	defer span.End()

	plan, err := a.plan(ctx, names)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return plan, nil
}

// plan loads the repository and resolves names into formulae in install order.
func (a *App) plan(ctx context.Context, names []string) ([]domain.Formula, error) {
	loadCtx, span := a.tracer.Start(ctx, "load repository")
	repo, err := a.repos.Load(loadCtx)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, zerr.Wrap(err, "failed to load formula index")
	}
	span.SetAttribute("formulae", repo.Len())
	span.End()

	_, span = a.tracer.Start(ctx, "resolve")
	defer span.End()

	order, err := resolver.Resolve(names, repo)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	plan, err := repo.Lookup(order)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	a.tracer.EmitPlan(ctx, order)
	return plan, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Downloads removes the bottle download cache.
	Downloads bool
	// Index removes the formula index snapshot.
	Index bool
}

// Clean removes the download cache and the index snapshot based on the provided options.
func (a *App) Clean(ctx context.Context, options CleanOptions) error {
	g, _ := errgroup.WithContext(ctx)

	remove := func(c ports.Cleaner, name string) {
		g.Go(func() error {
			a.logger.Info(fmt.Sprintf("removing %s...", name))
			if err := c.Clean(); err != nil {
				return zerr.Wrap(err, "failed to remove "+name)
			}
			a.logger.Info("removed " + name)
			return nil
		})
	}

	if options.Downloads {
		remove(a.downloads, "downloads")
	}
	if options.Index {
		remove(a.index, "formula index snapshot")
	}

	return g.Wait()
}
