package allocator

import (
	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/govalues/decimal"
)

// calc keeps the first arithmetic error and turns later operations into no-ops,
// so rule code reads as plain arithmetic.
type calc struct {
	err error
}

func (c *calc) do(f func() (decimal.Decimal, error)) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	d, err := f()
	if err != nil {
		c.err = err
		return decimal.Zero
	}
	return d
}

func (c *calc) sum(a, b decimal.Decimal) decimal.Decimal {
	return c.do(func() (decimal.Decimal, error) { return domain.Sum(a, b) })
}

func (c *calc) diff(a, b decimal.Decimal) decimal.Decimal {
	return c.do(func() (decimal.Decimal, error) { return domain.Diff(a, b) })
}

func (c *calc) percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return c.do(func() (decimal.Decimal, error) { return domain.PercentOf(amount, percent) })
}

func (c *calc) tenPercent(amount decimal.Decimal) decimal.Decimal {
	return c.do(func() (decimal.Decimal, error) { return domain.TenPercentOf(amount) })
}
