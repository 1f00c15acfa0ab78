package port

import (
	"context"

	"github.com/MikeRez0/payopt/internal/core/domain"
)

type InputProvider interface {
	ReadOrders(ctx context.Context, path string) ([]domain.Order, error)
	ReadPaymentMethods(ctx context.Context, path string) ([]domain.PaymentMethod, error)
}

type OutputSink interface {
	WriteSummary(summary domain.Summary) error
}
