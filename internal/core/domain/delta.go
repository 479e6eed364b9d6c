package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delta is the difference between a day's rate and the baseline day's rate
// for the same currency.
type Delta struct {
	ID    int64           `json:"id"`
	Date  time.Time       `json:"date"`
	Code  Currency        `json:"code"`
	Delta decimal.Decimal `json:"delta"`
}

// SameValues reports whether the delta values match.
func (d Delta) SameValues(other Delta) bool {
	return d.Delta.Equal(other.Delta)
}

// WithIdentityOf returns d's value under the identity of stored.
func (d Delta) WithIdentityOf(stored Delta) Delta {
	d.ID = stored.ID
	d.Date = stored.Date
	d.Code = stored.Code
	return d
}
