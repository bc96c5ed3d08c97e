package ports

import (
	"context"

	"go.trai.ch/samogon/internal/core/domain"
)

// Confirmer asks whether an install plan should proceed.
//
//go:generate mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	Confirm(ctx context.Context, plan []domain.Formula) (bool, error)
}
