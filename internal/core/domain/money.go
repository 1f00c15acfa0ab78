package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// MoneyScale is the number of digits after the decimal point of every amount.
const MoneyScale = 2

var (
	ZeroMoney  = decimal.MustNew(0, MoneyScale)
	OneCent    = decimal.MustNew(1, MoneyScale)
	tenPercent = decimal.MustNew(10, 2)
)

// Cents rounds d half to even at MoneyScale and pads it to exactly that scale.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale).Pad(MoneyScale)
}

// PercentOf returns amount*percent/100 rounded to cents.
func PercentOf(amount, percent decimal.Decimal) (decimal.Decimal, error) {
	product, err := amount.Mul(percent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	quo, err := product.Quo(decimal.Hundred)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	return Cents(quo), nil
}

// TenPercentOf returns the points threshold of an order value.
func TenPercentOf(amount decimal.Decimal) (decimal.Decimal, error) {
	product, err := amount.Mul(tenPercent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	return Cents(product), nil
}

func Sum(a, b decimal.Decimal) (decimal.Decimal, error) {
	s, err := a.Add(b)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	return Cents(s), nil
}

func Diff(a, b decimal.Decimal) (decimal.Decimal, error) {
	d, err := a.Sub(b)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	return Cents(d), nil
}
