package domain

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

const DefaultPointsMethodID = "POINTS"

type PaymentMethod struct {
	ID       string
	Discount decimal.Decimal // percent, 0..100
	Limit    decimal.Decimal
}

// Catalog is the immutable, ordered set of payment methods of one run.
// Iteration order is the order methods were given in.
type Catalog struct {
	methods  []PaymentMethod
	index    map[string]int
	pointsID string
}

func NewCatalog(methods []PaymentMethod, pointsID string) (*Catalog, error) {
	if pointsID == "" {
		pointsID = DefaultPointsMethodID
	}

	c := Catalog{
		methods:  make([]PaymentMethod, 0, len(methods)),
		index:    make(map[string]int, len(methods)),
		pointsID: pointsID,
	}
	for _, m := range methods {
		if _, ok := c.index[m.ID]; ok {
			return nil, fmt.Errorf("payment method %q: %w", m.ID, ErrConflictingData)
		}
		c.index[m.ID] = len(c.methods)
		c.methods = append(c.methods, m)
	}

	return &c, nil
}

func (c *Catalog) Lookup(id string) (PaymentMethod, bool) {
	i, ok := c.index[id]
	if !ok {
		return PaymentMethod{}, false
	}
	return c.methods[i], true
}

// Points returns the loyalty wallet, if the catalog has one.
func (c *Catalog) Points() (PaymentMethod, bool) {
	return c.Lookup(c.pointsID)
}

func (c *Catalog) PointsID() string {
	return c.pointsID
}

func (c *Catalog) IsPoints(id string) bool {
	return id == c.pointsID
}

// Card resolves a promoted method id. The points wallet is never a card.
func (c *Catalog) Card(id string) (PaymentMethod, bool) {
	if c.IsPoints(id) {
		return PaymentMethod{}, false
	}
	return c.Lookup(id)
}

// Cards returns every non-points method in catalog order.
func (c *Catalog) Cards() []PaymentMethod {
	cards := make([]PaymentMethod, 0, len(c.methods))
	for _, m := range c.methods {
		if !c.IsPoints(m.ID) {
			cards = append(cards, m)
		}
	}
	return cards
}

func (c *Catalog) Methods() []PaymentMethod {
	return append([]PaymentMethod(nil), c.methods...)
}

// Validate checks the discount is a percentage and the limit is not negative.
func (m PaymentMethod) Validate() error {
	if m.ID == "" {
		return errors.New("payment method id is empty")
	}
	if m.Discount.IsNeg() || m.Discount.Cmp(decimal.Hundred) > 0 {
		return fmt.Errorf("payment method %s: discount %s out of range 0..100", m.ID, m.Discount)
	}
	if m.Limit.IsNeg() {
		return fmt.Errorf("payment method %s: negative limit %s", m.ID, m.Limit)
	}
	return nil
}
