package formulae

import (
	"context"

	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
)

var _ ports.RepositoryLoader = (*Loader)(nil)

// Loader prefers the local snapshot and falls back to the remote index,
// refreshing the snapshot after a successful fetch.
type Loader struct {
	snapshot ports.SnapshotStore
	source   ports.FormulaSource
	logger   ports.Logger
}

// NewLoader creates a Loader.
func NewLoader(snapshot ports.SnapshotStore, source ports.FormulaSource, logger ports.Logger) *Loader {
	return &Loader{snapshot: snapshot, source: source, logger: logger}
}

// Load returns the repository. Snapshot failures are never fatal.
func (l *Loader) Load(ctx context.Context) (*domain.Repository, error) {
	repo, err := l.snapshot.Load()
	if err == nil {
		l.logger.Debug("using cached formula index")
		return repo, nil
	}
	l.logger.Debug("formula index snapshot unavailable: " + err.Error())

	repo, err = l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := l.snapshot.Save(repo); err != nil {
		l.logger.Warn("failed to save formula index snapshot: " + err.Error())
	}
	return repo, nil
}
