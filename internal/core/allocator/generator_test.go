package allocator_test

import (
	"testing"

	"github.com/MikeRez0/payopt/internal/core/allocator"
	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlans(t *testing.T) {
	type generateTest struct {
		name    string
		methods []domain.PaymentMethod
		order   domain.Order
		spent   map[string]string
		want    []planView
	}

	tests := []generateTest{
		{
			name: "discounted plans are not fully paid, points top-up remains",
			methods: []domain.PaymentMethod{
				method("mZysk", "10", "180"),
				method("POINTS", "15", "100"),
			},
			order: order("ORDER1", "100.00", "mZysk"),
			want: []planView{
				{Order: "ORDER1", Method: "mZysk", Points: "9.99", Cash: "90.01", Discount: "0.00", Final: "100.00"},
			},
		},
		{
			name: "no discount payment per card that covers the order",
			methods: []domain.PaymentMethod{
				method("mZysk", "10", "180"),
				method("BosBankrut", "5", "40"),
			},
			order: order("ORDER2", "50.00"),
			want: []planView{
				{Order: "ORDER2", Method: "mZysk", Points: "0.00", Cash: "50.00", Discount: "0.00", Final: "50.00"},
			},
		},
		{
			name: "zero discount promotion and plain payment are deduplicated",
			methods: []domain.PaymentMethod{
				method("Plain", "0", "100"),
			},
			order: order("ORDER3", "20.00", "Plain"),
			want: []planView{
				{Order: "ORDER3", Method: "Plain", Points: "0.00", Cash: "20.00", Discount: "0.00", Final: "20.00"},
			},
		},
		{
			name: "unknown and points promotions are ignored",
			methods: []domain.PaymentMethod{
				method("Plain", "0", "100"),
				method("POINTS", "15", "0"),
			},
			order: order("ORDER4", "20.00", "POINTS", "Ghost"),
			want: []planView{
				{Order: "ORDER4", Method: "Plain", Points: "0.00", Cash: "20.00", Discount: "0.00", Final: "20.00"},
			},
		},
		{
			name: "full points plan checks points against the discount only",
			methods: []domain.PaymentMethod{
				method("POINTS", "0", "10"),
			},
			order: order("ORDER5", "50.00"),
			want: []planView{
				{Order: "ORDER5", Method: "POINTS", Points: "50.00", Cash: "0.00", Discount: "0.00", Final: "50.00"},
			},
		},
		{
			name: "partial points plan survives when ten percent rounds to zero",
			methods: []domain.PaymentMethod{
				method("POINTS", "15", "1"),
			},
			order: order("ORDER6", "0.04"),
			want: []planView{
				{Order: "ORDER6", Method: "POINTS", Points: "0.04", Cash: "0.00", Discount: "0.00", Final: "0.04"},
			},
		},
		{
			name: "one top-up plan per card that covers the residual",
			methods: []domain.PaymentMethod{
				method("A", "0", "95"),
				method("B", "0", "94.99"),
				method("C", "0", "200"),
				method("POINTS", "15", "5"),
			},
			order: order("ORDER7", "100.00"),
			want: []planView{
				{Order: "ORDER7", Method: "C", Points: "0.00", Cash: "100.00", Discount: "0.00", Final: "100.00"},
				{Order: "ORDER7", Method: "A", Points: "5.00", Cash: "95.00", Discount: "0.00", Final: "100.00"},
				{Order: "ORDER7", Method: "C", Points: "5.00", Cash: "95.00", Discount: "0.00", Final: "100.00"},
			},
		},
		{
			name: "nothing covers the order",
			methods: []domain.PaymentMethod{
				method("mZysk", "10", "50"),
				method("POINTS", "15", "10"),
			},
			order: order("BIG", "500.00"),
			want:  []planView{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := catalog(t, test.methods...)
			limits := domain.NewLimits(c)
			before := limits.Clone()

			plans, err := allocator.GeneratePlans(test.order, c, limits)
			require.NoError(t, err)

			assert.Equal(t, test.want, views(plans))
			assert.Equal(t, before, limits, "generator must not touch limits")

			for _, p := range plans {
				assert.True(t, p.IsFullyPaid())
				final, err := domain.Sum(p.PointsAmount, p.CashAmount)
				require.NoError(t, err)
				assert.Equal(t, 0, final.Cmp(p.FinalAmount))
			}
		})
	}
}

func TestGeneratePlans_NoPointsMethod(t *testing.T) {
	c := catalog(t, method("mZysk", "10", "10"))

	plans, err := allocator.GeneratePlans(order("ORDER1", "0.04"), c, domain.NewLimits(c))
	require.NoError(t, err)
	assert.Equal(t, []planView{
		{Order: "ORDER1", Method: "mZysk", Points: "0.00", Cash: "0.04", Discount: "0.00", Final: "0.04"},
	}, views(plans))
}
