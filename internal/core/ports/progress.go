package ports

import "go.trai.ch/samogon/internal/core/domain"

// ProgressSink receives progress and status events from the fetch pipeline.
// Implementations must be safe for concurrent use.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressSink interface {
	// OnPlan is called once with the packages about to be fetched, in install order.
	OnPlan(formulae []domain.Formula)

	// OnPhase is called when a package's fetch task enters a new phase.
	OnPhase(name string, phase domain.Phase)

	// OnBytes reports the bytes of a package's archive processed so far.
	OnBytes(name string, transferred, total int64)

	// OnRetry is called before a download attempt is repeated.
	// attempt is the number of the attempt that is about to start, counted from 1.
	OnRetry(name string, attempt int, cause error)

	// OnCompleted reports the aggregate number of finished packages.
	OnCompleted(done, total int)

	// OnAbort is called once when the run is aborted by a failing package.
	OnAbort(name string, err error)
}
