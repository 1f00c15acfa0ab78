package allocator_test

import (
	"testing"

	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/require"
)

func method(id, discount, limit string) domain.PaymentMethod {
	return domain.PaymentMethod{
		ID:       id,
		Discount: decimal.MustParse(discount),
		Limit:    decimal.MustParse(limit),
	}
}

func order(id, total string, promotions ...string) domain.Order {
	return domain.Order{
		ID:         id,
		TotalValue: decimal.MustParse(total),
		Promotions: promotions,
	}
}

func catalog(t *testing.T, methods ...domain.PaymentMethod) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog(methods, domain.DefaultPointsMethodID)
	require.NoError(t, err)
	return c
}

// planView flattens a plan into strings for readable assertions.
type planView struct {
	Order    string
	Method   string
	Points   string
	Cash     string
	Discount string
	Final    string
}

func view(p domain.PaymentPlan) planView {
	return planView{
		Order:    p.OrderID,
		Method:   p.MethodID,
		Points:   p.PointsAmount.String(),
		Cash:     p.CashAmount.String(),
		Discount: p.Discount.String(),
		Final:    p.FinalAmount.String(),
	}
}

func views(plans []domain.PaymentPlan) []planView {
	result := make([]planView, 0, len(plans))
	for _, p := range plans {
		result = append(result, view(p))
	}
	return result
}
