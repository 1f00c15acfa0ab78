package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Limits holds the remaining spending limit of every method during one run.
type Limits map[string]decimal.Decimal

func NewLimits(c *Catalog) Limits {
	l := make(Limits, len(c.methods))
	for _, m := range c.methods {
		l[m.ID] = Cents(m.Limit)
	}
	return l
}

// Available returns the remaining limit of id, zero for unknown methods.
func (l Limits) Available(id string) decimal.Decimal {
	v, ok := l[id]
	if !ok {
		return decimal.Zero
	}
	return v
}

func (l Limits) Covers(id string, amount decimal.Decimal) bool {
	return l.Available(id).Cmp(amount) >= 0
}

// Consume decrements the limit of id by amount. It never lets a limit go negative.
func (l Limits) Consume(id string, amount decimal.Decimal) error {
	current := l.Available(id)
	if current.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrLimitExceeded, id, current, amount)
	}
	rest, err := Diff(current, amount)
	if err != nil {
		return err
	}
	l[id] = rest
	return nil
}

func (l Limits) Clone() Limits {
	c := make(Limits, len(l))
	for id, v := range l {
		c[id] = v
	}
	return c
}
