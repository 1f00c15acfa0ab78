package port

import (
	"context"

	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	Allocate(ctx context.Context, orders []domain.Order, methods []domain.PaymentMethod) (*domain.Allocation, error)
	GetAllocation(ctx context.Context, runID uuid.UUID) (*domain.Allocation, error)
}
