package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Observation is a daily exchange-rate sample for one currency.
// Identity is (Date, Code); ID is assigned by the store.
type Observation struct {
	ID     int64           `json:"id"`
	Date   time.Time       `json:"date"`
	Code   Currency        `json:"code"`
	Count  int             `json:"count"`  // units of the currency the rate is quoted for
	Rate   decimal.Decimal `json:"rate"`   // exact, never float
	Change decimal.Decimal `json:"change"` // signed change against the previous day
}

// SameValues reports whether the non-identity fields match by value.
func (o Observation) SameValues(other Observation) bool {
	return o.Count == other.Count && o.Rate.Equal(other.Rate) && o.Change.Equal(other.Change)
}

// WithIdentityOf returns o's values under the identity of stored.
func (o Observation) WithIdentityOf(stored Observation) Observation {
	o.ID = stored.ID
	o.Date = stored.Date
	o.Code = stored.Code
	return o
}

// Validate checks the invariants a stored observation must hold.
func (o Observation) Validate() error {
	if o.Count < 0 {
		return fmt.Errorf("observation %s %s: count %d must not be negative", o.Code, FormatDate(o.Date), o.Count)
	}
	return nil
}
