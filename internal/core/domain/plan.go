package domain

import (
	"github.com/govalues/decimal"
)

// Phase names the optimizer stage that committed a plan.
type Phase string

const (
	PhaseCardPromotion Phase = "CARD_PROMOTION"
	PhasePoints        Phase = "POINTS"
	PhaseRemaining     Phase = "REMAINING"
)

// PaymentPlan describes how one order is covered by points and/or cash under one anchor method.
// FinalAmount is always PointsAmount + CashAmount.
type PaymentPlan struct {
	OrderID      string
	MethodID     string
	TotalValue   decimal.Decimal
	PointsAmount decimal.Decimal
	CashAmount   decimal.Decimal
	Discount     decimal.Decimal
	FinalAmount  decimal.Decimal
	Phase        Phase
}

func (p PaymentPlan) IsFullyPaid() bool {
	paid, err := p.PointsAmount.Add(p.CashAmount)
	if err != nil {
		return false
	}
	return paid.Cmp(p.TotalValue) >= 0
}

func (p PaymentPlan) Equal(o PaymentPlan) bool {
	return p.OrderID == o.OrderID &&
		p.MethodID == o.MethodID &&
		p.Phase == o.Phase &&
		p.TotalValue.Cmp(o.TotalValue) == 0 &&
		p.PointsAmount.Cmp(o.PointsAmount) == 0 &&
		p.CashAmount.Cmp(o.CashAmount) == 0 &&
		p.Discount.Cmp(o.Discount) == 0 &&
		p.FinalAmount.Cmp(o.FinalAmount) == 0
}
