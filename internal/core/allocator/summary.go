package allocator

import (
	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/govalues/decimal"
)

// Summarize totals committed spend per method: points portions under the
// points id, cash portions under each plan's anchor method.
func Summarize(plans []domain.PaymentPlan, pointsID string) (domain.Summary, error) {
	summary := make(domain.Summary)
	add := func(id string, amount decimal.Decimal) error {
		total, err := domain.Sum(summary[id], amount)
		if err != nil {
			return err
		}
		summary[id] = total
		return nil
	}

	for _, p := range plans {
		if p.PointsAmount.IsPos() {
			if err := add(pointsID, p.PointsAmount); err != nil {
				return nil, err
			}
		}
		if p.CashAmount.IsPos() {
			if err := add(p.MethodID, p.CashAmount); err != nil {
				return nil, err
			}
		}
	}
	return summary, nil
}
