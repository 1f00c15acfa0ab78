package allocator_test

import (
	"testing"

	"github.com/MikeRez0/payopt/internal/core/allocator"
	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func summaryView(s domain.Summary) map[string]string {
	result := make(map[string]string, len(s))
	for id, amount := range s {
		result[id] = amount.String()
	}
	return result
}

func TestOptimizer_Allocate(t *testing.T) {
	type allocateTest struct {
		name        string
		methods     []domain.PaymentMethod
		orders      []domain.Order
		expPlans    []planView
		expPhases   []domain.Phase
		expSummary  map[string]string
		expUnpaid   []string
		expRemained map[string]string
	}

	tests := []allocateTest{
		{
			name: "card promotion wins over better points discount",
			methods: []domain.PaymentMethod{
				method("mZysk", "10", "180.00"),
				method("POINTS", "15", "100.00"),
			},
			orders: []domain.Order{order("ORDER1", "100.00", "mZysk")},
			expPlans: []planView{
				{Order: "ORDER1", Method: "mZysk", Points: "0.00", Cash: "90.00", Discount: "10.00", Final: "90.00"},
			},
			expPhases:   []domain.Phase{domain.PhaseCardPromotion},
			expSummary:  map[string]string{"mZysk": "90.00"},
			expUnpaid:   []string{},
			expRemained: map[string]string{"mZysk": "90.00", "POINTS": "100.00"},
		},
		{
			name: "full points payment without promotions",
			methods: []domain.PaymentMethod{
				method("mZysk", "10", "180.00"),
				method("POINTS", "15", "100.00"),
			},
			orders: []domain.Order{order("ORDER2", "90.00")},
			expPlans: []planView{
				{Order: "ORDER2", Method: "POINTS", Points: "76.50", Cash: "0.00", Discount: "13.50", Final: "76.50"},
			},
			expPhases:   []domain.Phase{domain.PhasePoints},
			expSummary:  map[string]string{"POINTS": "76.50"},
			expUnpaid:   []string{},
			expRemained: map[string]string{"mZysk": "180.00", "POINTS": "23.50"},
		},
		{
			name: "order nobody can pay is reported and left out",
			methods: []domain.PaymentMethod{
				method("mZysk", "10", "50.00"),
				method("POINTS", "15", "10.00"),
			},
			orders:      []domain.Order{order("BIG", "500.00")},
			expPlans:    []planView{},
			expPhases:   []domain.Phase{},
			expSummary:  map[string]string{},
			expUnpaid:   []string{"BIG"},
			expRemained: map[string]string{"mZysk": "50.00", "POINTS": "10.00"},
		},
		{
			name: "remaining phase prefers points top-up over plain card",
			methods: []domain.PaymentMethod{
				method("mZysk", "10", "200.00"),
				method("POINTS", "15", "5.00"),
			},
			orders: []domain.Order{order("A", "100.00")},
			expPlans: []planView{
				{Order: "A", Method: "mZysk", Points: "5.00", Cash: "95.00", Discount: "0.00", Final: "100.00"},
			},
			expPhases:   []domain.Phase{domain.PhaseRemaining},
			expSummary:  map[string]string{"POINTS": "5.00", "mZysk": "95.00"},
			expUnpaid:   []string{},
			expRemained: map[string]string{"mZysk": "105.00", "POINTS": "0.00"},
		},
		{
			name: "bigger discount takes the shared card limit first",
			methods: []domain.PaymentMethod{
				method("mZysk", "10", "100.00"),
			},
			orders: []domain.Order{
				order("B", "50.00", "mZysk"),
				order("A", "100.00", "mZysk"),
			},
			expPlans: []planView{
				{Order: "A", Method: "mZysk", Points: "0.00", Cash: "90.00", Discount: "10.00", Final: "90.00"},
			},
			expPhases:   []domain.Phase{domain.PhaseCardPromotion},
			expSummary:  map[string]string{"mZysk": "90.00"},
			expUnpaid:   []string{"B"},
			expRemained: map[string]string{"mZysk": "10.00"},
		},
		{
			name: "equal discounts resolve smaller orders first",
			methods: []domain.PaymentMethod{
				method("K1", "10", "1000"),
				method("K2", "20", "1000"),
			},
			orders: []domain.Order{
				order("X", "100.00", "K1"),
				order("Y", "50.00", "K2"),
			},
			expPlans: []planView{
				{Order: "Y", Method: "K2", Points: "0.00", Cash: "40.00", Discount: "10.00", Final: "40.00"},
				{Order: "X", Method: "K1", Points: "0.00", Cash: "90.00", Discount: "10.00", Final: "90.00"},
			},
			expPhases:   []domain.Phase{domain.PhaseCardPromotion, domain.PhaseCardPromotion},
			expSummary:  map[string]string{"K1": "90.00", "K2": "40.00"},
			expUnpaid:   []string{},
			expRemained: map[string]string{"K1": "910.00", "K2": "960.00"},
		},
		{
			name: "generated full points plan is not committed beyond the balance",
			methods: []domain.PaymentMethod{
				method("POINTS", "0", "10.00"),
			},
			orders:      []domain.Order{order("A", "50.00")},
			expPlans:    []planView{},
			expPhases:   []domain.Phase{},
			expSummary:  map[string]string{},
			expUnpaid:   []string{"A"},
			expRemained: map[string]string{"POINTS": "10.00"},
		},
		{
			name: "duplicate order ids are processed once",
			methods: []domain.PaymentMethod{
				method("mZysk", "0", "100.00"),
			},
			orders: []domain.Order{
				order("A", "60.00"),
				order("A", "60.00"),
			},
			expPlans: []planView{
				{Order: "A", Method: "mZysk", Points: "0.00", Cash: "60.00", Discount: "0.00", Final: "60.00"},
			},
			expPhases:   []domain.Phase{domain.PhaseRemaining},
			expSummary:  map[string]string{"mZysk": "60.00"},
			expUnpaid:   []string{},
			expRemained: map[string]string{"mZysk": "40.00"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o := allocator.NewOptimizer(zap.NewNop())

			result, err := o.Allocate(test.orders, catalog(t, test.methods...))
			require.NoError(t, err)

			assert.Equal(t, test.expPlans, views(result.Plans))
			phases := make([]domain.Phase, 0, len(result.Plans))
			for _, p := range result.Plans {
				phases = append(phases, p.Phase)
			}
			assert.Equal(t, test.expPhases, phases)
			assert.Equal(t, test.expSummary, summaryView(result.Summary))
			assert.Equal(t, test.expUnpaid, result.Unpaid)
			assert.Equal(t, test.expRemained, summaryView(domain.Summary(result.Remaining)))
		})
	}
}

func sampleBatch(t *testing.T) ([]domain.Order, *domain.Catalog) {
	t.Helper()
	c, err := domain.NewCatalog([]domain.PaymentMethod{
		method("PUNKTY", "15", "100.00"),
		method("mZysk", "10", "180.00"),
		method("BosBankrut", "5", "200.00"),
	}, "PUNKTY")
	require.NoError(t, err)

	orders := []domain.Order{
		order("ORDER1", "150.00", "mZysk"),
		order("ORDER2", "200.00", "BosBankrut"),
		order("ORDER3", "150.00", "mZysk", "BosBankrut"),
		order("ORDER4", "50.00"),
	}
	return orders, c
}

func TestOptimizer_SampleBatch(t *testing.T) {
	orders, c := sampleBatch(t)

	result, err := allocator.NewOptimizer(zap.NewNop()).Allocate(orders, c)
	require.NoError(t, err)

	assert.Equal(t, []planView{
		{Order: "ORDER1", Method: "mZysk", Points: "0.00", Cash: "135.00", Discount: "15.00", Final: "135.00"},
		{Order: "ORDER2", Method: "BosBankrut", Points: "0.00", Cash: "190.00", Discount: "10.00", Final: "190.00"},
		{Order: "ORDER4", Method: "PUNKTY", Points: "42.50", Cash: "0.00", Discount: "7.50", Final: "42.50"},
	}, views(result.Plans))
	assert.Equal(t, map[string]string{
		"mZysk":      "135.00",
		"BosBankrut": "190.00",
		"PUNKTY":     "42.50",
	}, summaryView(result.Summary))
	assert.Equal(t, []string{"ORDER3"}, result.Unpaid)
	assert.Equal(t, 4, result.OrderCount)
	assert.Equal(t, 3, result.PaidCount())
}

func TestOptimizer_Deterministic(t *testing.T) {
	orders, c := sampleBatch(t)
	o := allocator.NewOptimizer(zap.NewNop())

	first, err := o.Allocate(orders, c)
	require.NoError(t, err)
	second, err := o.Allocate(orders, c)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptimizer_Invariants(t *testing.T) {
	c := catalog(t,
		method("mZysk", "10", "180.00"),
		method("BosBankrut", "5", "200.00"),
		method("Plain", "0", "120.00"),
		method("POINTS", "15", "100.00"),
	)
	orders := []domain.Order{
		order("O1", "150.00", "mZysk"),
		order("O2", "200.00", "BosBankrut"),
		order("O3", "150.00", "mZysk", "BosBankrut"),
		order("O4", "50.00"),
		order("O5", "33.33", "Plain"),
		order("O6", "99.99"),
		order("O7", "1.25", "mZysk"),
		order("O8", "75.10", "POINTS"),
	}

	result, err := allocator.NewOptimizer(zap.NewNop()).Allocate(orders, c)
	require.NoError(t, err)
	assert.Equal(t, len(orders), result.PaidCount()+len(result.Unpaid))

	spent := make(map[string]decimal.Decimal)
	for _, p := range result.Plans {
		paid, err := domain.Sum(p.PointsAmount, p.CashAmount)
		require.NoError(t, err)
		assert.Equal(t, 0, paid.Cmp(p.FinalAmount), "final amount of %s", p.OrderID)

		covered, err := domain.Sum(paid, p.Discount)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, covered.Cmp(p.TotalValue), 0, "order %s not covered", p.OrderID)
		if p.Phase == domain.PhaseRemaining {
			assert.True(t, p.IsFullyPaid(), "order %s", p.OrderID)
		}

		if p.PointsAmount.IsPos() {
			spent["POINTS"], err = domain.Sum(spent["POINTS"], p.PointsAmount)
			require.NoError(t, err)
		}
		if p.CashAmount.IsPos() && p.MethodID != "POINTS" {
			spent[p.MethodID], err = domain.Sum(spent[p.MethodID], p.CashAmount)
			require.NoError(t, err)
		}
	}

	for _, m := range c.Methods() {
		assert.LessOrEqual(t, spent[m.ID].Cmp(m.Limit), 0, "limit of %s exceeded", m.ID)
		assert.False(t, result.Remaining.Available(m.ID).IsNeg())
	}
}
