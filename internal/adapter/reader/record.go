package reader

import (
	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/govalues/decimal"
)

type orderRecord struct {
	ID         string           `json:"orderId" yaml:"orderId" validate:"required"`
	TotalValue *decimal.Decimal `json:"totalOrderValue" yaml:"totalOrderValue" validate:"required"`
	Promotions []string         `json:"promotions" yaml:"promotions" validate:"dive,required"`
}

type paymentMethodRecord struct {
	ID       string           `json:"id" yaml:"id" validate:"required"`
	Discount *decimal.Decimal `json:"discount" yaml:"discount" validate:"required"`
	Limit    *decimal.Decimal `json:"limit" yaml:"limit" validate:"required"`
}

func (r orderRecord) toDomain() (domain.Order, error) {
	o := domain.Order{
		ID:         r.ID,
		TotalValue: *r.TotalValue,
		Promotions: r.Promotions,
	}
	return o, o.Validate()
}

func (r paymentMethodRecord) toDomain() (domain.PaymentMethod, error) {
	m := domain.PaymentMethod{
		ID:       r.ID,
		Discount: *r.Discount,
		Limit:    *r.Limit,
	}
	return m, m.Validate()
}
