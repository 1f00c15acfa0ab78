package domain

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

type Order struct {
	ID         string
	TotalValue decimal.Decimal
	Promotions []string
}

// Validate checks the order can enter an allocation run.
func (o Order) Validate() error {
	if o.ID == "" {
		return errors.New("order id is empty")
	}
	if o.TotalValue.IsNeg() {
		return fmt.Errorf("order %s: negative total value %s", o.ID, o.TotalValue)
	}
	for _, id := range o.Promotions {
		if id == "" {
			return fmt.Errorf("order %s: empty promotion id", o.ID)
		}
	}
	return nil
}
