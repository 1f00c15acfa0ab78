package port

import "github.com/MikeRez0/payopt/internal/core/domain"

//go:generate mockgen -source=observer.go -destination=mock/observer.go -package=mock
type Observer interface {
	ObserveAllocation(allocation *domain.Allocation)
}
