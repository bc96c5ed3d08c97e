package ports

import (
	"context"

	"go.trai.ch/samogon/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// FormulaSource fetches the formula index from its remote origin.
type FormulaSource interface {
	Fetch(ctx context.Context) (*domain.Repository, error)
}

// SnapshotStore persists a parsed Repository between runs.
type SnapshotStore interface {
	// Load reads the snapshot. Any failure is reported as domain.ErrSnapshot.
	Load() (*domain.Repository, error)

	// Save replaces the snapshot with repo.
	Save(repo *domain.Repository) error
}

// RepositoryLoader returns the Repository for a run.
type RepositoryLoader interface {
	Load(ctx context.Context) (*domain.Repository, error)
}
