package service

import (
	"context"
	"errors"
	"time"

	"github.com/MikeRez0/payopt/internal/core/allocator"
	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/MikeRez0/payopt/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	optimizer *allocator.Optimizer
	repo      port.Repository
	observer  port.Observer
	pointsID  string
	logger    *zap.Logger
}

// NewService wires the allocation engine. repo and observer are optional.
func NewService(repo port.Repository, observer port.Observer, pointsID string, logger *zap.Logger) (*Service, error) {
	return &Service{
		optimizer: allocator.NewOptimizer(logger.Named("Optimizer")),
		repo:      repo,
		observer:  observer,
		pointsID:  pointsID,
		logger:    logger,
	}, nil
}

func (s *Service) Allocate(ctx context.Context,
	orders []domain.Order,
	methods []domain.PaymentMethod,
) (*domain.Allocation, error) {
	catalog, err := domain.NewCatalog(methods, s.pointsID)
	if err != nil {
		return nil, err
	}

	allocation, err := s.optimizer.Allocate(orders, catalog)
	if err != nil {
		s.logger.Error("Allocate", zap.Error(err))
		return nil, domain.ErrInternal
	}
	allocation.RunID = uuid.New()
	allocation.CreatedAt = time.Now().UTC()

	s.logger.Info("Allocation finished",
		zap.String("run", allocation.RunID.String()),
		zap.Int("orders", allocation.OrderCount),
		zap.Int("paid", allocation.PaidCount()),
		zap.Int("unpaid", len(allocation.Unpaid)))

	if s.repo != nil {
		err = s.repo.SaveAllocation(ctx, allocation)
		if err != nil {
			s.logger.Error("Save allocation", zap.Error(err))
			return nil, domain.ErrInternal
		}
	}
	if s.observer != nil {
		s.observer.ObserveAllocation(allocation)
	}

	return allocation, nil
}

func (s *Service) GetAllocation(ctx context.Context, runID uuid.UUID) (*domain.Allocation, error) {
	if s.repo == nil {
		return nil, domain.ErrArchiveDisabled
	}

	allocation, err := s.repo.ReadAllocation(ctx, runID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Read allocation", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return allocation, nil
}
