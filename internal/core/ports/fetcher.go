package ports

import (
	"context"

	"go.trai.ch/samogon/internal/core/domain"
)

//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks

// BottleFetcher resolves a formula's bottle to a verified archive in the local cache.
type BottleFetcher interface {
	// Fetch returns the outcome with ArchivePath set.
	// Cached reports whether the archive was already present and valid.
	Fetch(ctx context.Context, formula domain.Formula) (domain.FetchOutcome, error)
}

// Stager extracts a verified archive into a fresh temporary directory.
type Stager interface {
	Stage(ctx context.Context, archivePath string) (string, error)
}
