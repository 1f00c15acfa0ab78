package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// Summary is the total spent through every method id.
type Summary map[string]decimal.Decimal

func (s Summary) SortedIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type Allocation struct {
	RunID      uuid.UUID
	CreatedAt  time.Time
	OrderCount int
	Plans      []PaymentPlan
	Summary    Summary
	Unpaid     []string
	Remaining  Limits
}

func (a *Allocation) PaidCount() int {
	return len(a.Plans)
}
