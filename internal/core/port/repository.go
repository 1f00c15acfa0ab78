package port

import (
	"context"

	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	SaveAllocation(ctx context.Context, allocation *domain.Allocation) error
	ReadAllocation(ctx context.Context, runID uuid.UUID) (*domain.Allocation, error)
}
