package allocator

import (
	"fmt"
	"slices"

	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Optimizer commits one plan per order in three greedy phases: card
// promotions, full points payment, then the best generated plan for
// whatever is left. Commits are final.
type Optimizer struct {
	logger *zap.Logger
}

func NewOptimizer(logger *zap.Logger) *Optimizer {
	return &Optimizer{logger: logger}
}

// runState is threaded through the phases. limits only ever decrease.
type runState struct {
	limits domain.Limits
	paid   map[string]bool
	plans  []domain.PaymentPlan
}

func (st *runState) commit(plan domain.PaymentPlan, phase domain.Phase) {
	plan.Phase = phase
	st.plans = append(st.plans, plan)
	st.paid[plan.OrderID] = true
}

type cardPromotion struct {
	order    domain.Order
	card     domain.PaymentMethod
	discount decimal.Decimal
	cost     decimal.Decimal
}

type pointsPayment struct {
	order    domain.Order
	cost     decimal.Decimal
	discount decimal.Decimal
}

func (o *Optimizer) Allocate(orders []domain.Order, catalog *domain.Catalog) (*domain.Allocation, error) {
	batch := o.uniqueOrders(orders)

	st := &runState{
		limits: domain.NewLimits(catalog),
		paid:   make(map[string]bool, len(batch)),
	}

	if err := o.cardPromotionPhase(st, batch, catalog); err != nil {
		return nil, fmt.Errorf("card promotion phase: %w", err)
	}
	if err := o.pointsPhase(st, batch, catalog); err != nil {
		return nil, fmt.Errorf("points phase: %w", err)
	}
	if err := o.remainingPhase(st, batch, catalog); err != nil {
		return nil, fmt.Errorf("remaining orders phase: %w", err)
	}

	unpaid := make([]string, 0)
	for _, order := range batch {
		if !st.paid[order.ID] {
			unpaid = append(unpaid, order.ID)
		}
	}
	if len(unpaid) > 0 {
		o.logger.Warn("Not all orders were paid", zap.Strings("unpaid", unpaid))
	}

	summary, err := Summarize(st.plans, catalog.PointsID())
	if err != nil {
		return nil, err
	}

	return &domain.Allocation{
		OrderCount: len(batch),
		Plans:      st.plans,
		Summary:    summary,
		Unpaid:     unpaid,
		Remaining:  st.limits,
	}, nil
}

func (o *Optimizer) uniqueOrders(orders []domain.Order) []domain.Order {
	seen := make(map[string]bool, len(orders))
	batch := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if seen[order.ID] {
			o.logger.Warn("Duplicate order skipped", zap.String("order", order.ID))
			continue
		}
		seen[order.ID] = true
		order.TotalValue = domain.Cents(order.TotalValue)
		batch = append(batch, order)
	}
	return batch
}

func (o *Optimizer) cardPromotionPhase(st *runState, orders []domain.Order, catalog *domain.Catalog) error {
	var c calc
	candidates := make([]cardPromotion, 0)
	for _, order := range orders {
		for _, id := range order.Promotions {
			card, ok := catalog.Card(id)
			if !ok {
				continue
			}
			discount := c.percentOf(order.TotalValue, card.Discount)
			candidates = append(candidates, cardPromotion{
				order:    order,
				card:     card,
				discount: discount,
				cost:     c.diff(order.TotalValue, discount),
			})
		}
	}
	if c.err != nil {
		return c.err
	}

	// higher discount first, then smaller orders
	slices.SortStableFunc(candidates, func(a, b cardPromotion) int {
		if r := b.discount.Cmp(a.discount); r != 0 {
			return r
		}
		return a.order.TotalValue.Cmp(b.order.TotalValue)
	})

	committed := 0
	for _, cp := range candidates {
		if st.paid[cp.order.ID] || !st.limits.Covers(cp.card.ID, cp.cost) {
			continue
		}
		if err := st.limits.Consume(cp.card.ID, cp.cost); err != nil {
			return err
		}
		st.commit(domain.PaymentPlan{
			OrderID:      cp.order.ID,
			MethodID:     cp.card.ID,
			TotalValue:   cp.order.TotalValue,
			PointsAmount: domain.ZeroMoney,
			CashAmount:   cp.cost,
			Discount:     cp.discount,
			FinalAmount:  cp.cost,
		}, domain.PhaseCardPromotion)
		committed++
	}

	o.logger.Debug("Card promotion phase finished",
		zap.Int("candidates", len(candidates)), zap.Int("committed", committed))
	return nil
}

func (o *Optimizer) pointsPhase(st *runState, orders []domain.Order, catalog *domain.Catalog) error {
	points, ok := catalog.Points()
	if !ok {
		o.logger.Debug("No points method in catalog, points phase skipped")
		return nil
	}

	var c calc
	candidates := make([]pointsPayment, 0)
	for _, order := range orders {
		if st.paid[order.ID] {
			continue
		}
		discount := c.percentOf(order.TotalValue, points.Discount)
		candidates = append(candidates, pointsPayment{
			order:    order,
			cost:     c.diff(order.TotalValue, discount),
			discount: discount,
		})
	}
	if c.err != nil {
		return c.err
	}

	// smaller orders first, then higher discount
	slices.SortStableFunc(candidates, func(a, b pointsPayment) int {
		if r := a.order.TotalValue.Cmp(b.order.TotalValue); r != 0 {
			return r
		}
		return b.discount.Cmp(a.discount)
	})

	committed := 0
	for _, pp := range candidates {
		if st.paid[pp.order.ID] || !st.limits.Covers(points.ID, pp.cost) {
			continue
		}
		if err := st.limits.Consume(points.ID, pp.cost); err != nil {
			return err
		}
		st.commit(domain.PaymentPlan{
			OrderID:      pp.order.ID,
			MethodID:     points.ID,
			TotalValue:   pp.order.TotalValue,
			PointsAmount: pp.cost,
			CashAmount:   domain.ZeroMoney,
			Discount:     pp.discount,
			FinalAmount:  pp.cost,
		}, domain.PhasePoints)
		committed++
	}

	o.logger.Debug("Points phase finished",
		zap.Int("candidates", len(candidates)), zap.Int("committed", committed))
	return nil
}

func (o *Optimizer) remainingPhase(st *runState, orders []domain.Order, catalog *domain.Catalog) error {
	remaining := make([]domain.Order, 0)
	for _, order := range orders {
		if !st.paid[order.ID] {
			remaining = append(remaining, order)
		}
	}
	// larger orders first
	slices.SortStableFunc(remaining, func(a, b domain.Order) int {
		return b.TotalValue.Cmp(a.TotalValue)
	})

	committed := 0
	for _, order := range remaining {
		plans, err := GeneratePlans(order, catalog, st.limits)
		if err != nil {
			return fmt.Errorf("order %s: %w", order.ID, err)
		}
		if len(plans) == 0 {
			o.logger.Warn("Could not find any payment plan for order",
				zap.String("order", order.ID))
			continue
		}

		best, ok := bestAffordable(plans, st.limits, catalog)
		if !ok {
			o.logger.Warn("No viable plan selected for order",
				zap.String("order", order.ID), zap.Int("candidates", len(plans)))
			continue
		}
		if err := consumePlan(st.limits, best, catalog); err != nil {
			return fmt.Errorf("order %s: %w", order.ID, err)
		}
		st.commit(best, domain.PhaseRemaining)
		committed++
	}

	o.logger.Debug("Remaining orders phase finished",
		zap.Int("orders", len(remaining)), zap.Int("committed", committed))
	return nil
}

// rankPlans orders candidates best first: larger discount, then more points,
// then lower final amount. Equal plans keep generation order.
func rankPlans(plans []domain.PaymentPlan) []domain.PaymentPlan {
	ranked := slices.Clone(plans)
	slices.SortStableFunc(ranked, func(a, b domain.PaymentPlan) int {
		if r := b.Discount.Cmp(a.Discount); r != 0 {
			return r
		}
		if r := b.PointsAmount.Cmp(a.PointsAmount); r != 0 {
			return r
		}
		return a.FinalAmount.Cmp(b.FinalAmount)
	})
	return ranked
}

// bestAffordable returns the best ranked plan the current limits can pay for.
func bestAffordable(plans []domain.PaymentPlan, limits domain.Limits, catalog *domain.Catalog) (domain.PaymentPlan, bool) {
	for _, p := range rankPlans(plans) {
		if affordable(p, limits, catalog) {
			return p, true
		}
	}
	return domain.PaymentPlan{}, false
}

func affordable(p domain.PaymentPlan, limits domain.Limits, catalog *domain.Catalog) bool {
	if p.PointsAmount.IsPos() && !limits.Covers(catalog.PointsID(), p.PointsAmount) {
		return false
	}
	if p.CashAmount.IsPos() && !catalog.IsPoints(p.MethodID) && !limits.Covers(p.MethodID, p.CashAmount) {
		return false
	}
	return true
}

func consumePlan(limits domain.Limits, p domain.PaymentPlan, catalog *domain.Catalog) error {
	if p.PointsAmount.IsPos() {
		if err := limits.Consume(catalog.PointsID(), p.PointsAmount); err != nil {
			return err
		}
	}
	if p.CashAmount.IsPos() && !catalog.IsPoints(p.MethodID) {
		if err := limits.Consume(p.MethodID, p.CashAmount); err != nil {
			return err
		}
	}
	return nil
}
