package allocator

import (
	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/govalues/decimal"
)

// GeneratePlans lists every way to pay order in full with the given remaining limits.
// It never mutates limits. The result keeps emission order and has no duplicates.
func GeneratePlans(order domain.Order, catalog *domain.Catalog, limits domain.Limits) ([]domain.PaymentPlan, error) {
	g := generator{
		order:   order,
		catalog: catalog,
		limits:  limits,
		total:   domain.Cents(order.TotalValue),
	}
	return g.run()
}

type generator struct {
	order   domain.Order
	catalog *domain.Catalog
	limits  domain.Limits
	total   decimal.Decimal

	plans []domain.PaymentPlan
	calc  calc
}

func (g *generator) run() ([]domain.PaymentPlan, error) {
	g.cardPromotions()

	points, hasPoints := g.catalog.Points()
	available := g.limits.Available(g.catalog.PointsID())
	ten := g.calc.tenPercent(g.total)

	if hasPoints {
		g.fullPoints(points, available)
		g.partialPoints(available, ten)
	}
	g.noDiscount()
	if hasPoints {
		g.subThresholdPoints(available, ten)
	}

	if g.calc.err != nil {
		return nil, g.calc.err
	}

	result := make([]domain.PaymentPlan, 0, len(g.plans))
	for _, p := range g.plans {
		if !p.IsFullyPaid() || containsPlan(result, p) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (g *generator) add(methodID string, points, cash, discount decimal.Decimal) {
	g.plans = append(g.plans, domain.PaymentPlan{
		OrderID:      g.order.ID,
		MethodID:     methodID,
		TotalValue:   g.total,
		PointsAmount: points,
		CashAmount:   cash,
		Discount:     discount,
		FinalAmount:  g.calc.sum(points, cash),
	})
}

// cardPromotions pays the whole order with a promoted card at its discount.
func (g *generator) cardPromotions() {
	for _, id := range g.order.Promotions {
		card, ok := g.catalog.Card(id)
		if !ok {
			continue
		}
		discount := g.calc.percentOf(g.total, card.Discount)
		cost := g.calc.diff(g.total, discount)
		if g.limits.Covers(card.ID, cost) {
			g.add(card.ID, domain.ZeroMoney, cost, discount)
		}
	}
}

// fullPoints pays the whole order with points. Feasibility is checked against
// the discount value, not the points needed.
func (g *generator) fullPoints(points domain.PaymentMethod, available decimal.Decimal) {
	discount := g.calc.percentOf(g.total, points.Discount)
	needed := g.calc.diff(g.total, discount)
	if available.Cmp(discount) >= 0 {
		g.add(points.ID, needed, domain.ZeroMoney, discount)
	}
}

// partialPoints spends at least ten percent of the order in points for a flat
// discount of that ten percent. Only emitted when no cash residual remains.
func (g *generator) partialPoints(available, ten decimal.Decimal) {
	if available.Cmp(ten) < 0 {
		return
	}
	due := g.calc.diff(g.total, ten)

	commit := available.Min(due)
	if commit.Cmp(ten) < 0 {
		commit = ten
	}
	commit = commit.Min(available)
	commit = commit.Min(due.Max(ten))

	if !commit.IsPos() {
		return
	}
	cash := g.calc.diff(due, commit)
	if cash.IsNeg() {
		cash = domain.ZeroMoney
	}
	if !cash.IsZero() || commit.Cmp(ten) < 0 {
		return
	}
	g.add(g.catalog.PointsID(), commit, domain.ZeroMoney, ten)
}

// noDiscount pays the whole order with one card at list price, unless a
// discounted card-only plan already exists for that card.
func (g *generator) noDiscount() {
	for _, card := range g.catalog.Cards() {
		if g.coveredByPromotion(card.ID) {
			continue
		}
		if g.limits.Covers(card.ID, g.total) {
			g.add(card.ID, domain.ZeroMoney, g.total, domain.ZeroMoney)
		}
	}
}

func (g *generator) coveredByPromotion(cardID string) bool {
	for _, p := range g.plans {
		if p.MethodID == cardID && p.Discount.IsPos() && p.PointsAmount.IsZero() {
			return true
		}
	}
	return false
}

// subThresholdPoints spends less than ten percent of the order in points,
// without discount, and tops the rest up from any card that can cover it.
func (g *generator) subThresholdPoints(available, ten decimal.Decimal) {
	if !available.IsPos() {
		return
	}
	ceiling := g.calc.diff(ten, domain.OneCent).Max(decimal.Zero)
	spend := available.Min(ceiling).Min(g.total)
	if !spend.IsPos() {
		return
	}

	cash := g.calc.diff(g.total, spend)
	if cash.IsNeg() {
		cash = domain.ZeroMoney
	}
	if cash.IsZero() {
		g.add(g.catalog.PointsID(), spend, domain.ZeroMoney, domain.ZeroMoney)
		return
	}
	for _, card := range g.catalog.Cards() {
		if g.limits.Covers(card.ID, cash) {
			g.add(card.ID, spend, cash, domain.ZeroMoney)
		}
	}
}

func containsPlan(plans []domain.PaymentPlan, p domain.PaymentPlan) bool {
	for _, q := range plans {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
