package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observation is the row shape of the observations table.
type Observation struct {
	ID       int64           `db:"id"`
	RateDate time.Time       `db:"rate_date"` // DATE
	Code     string          `db:"code"`
	Count    int             `db:"unit_count"`
	Rate     decimal.Decimal `db:"rate"`   // NUMERIC
	Change   decimal.Decimal `db:"change"` // NUMERIC
}

// Delta is the row shape of the deltas table.
type Delta struct {
	ID       int64           `db:"id"`
	RateDate time.Time       `db:"rate_date"`
	Code     string          `db:"code"`
	Delta    decimal.Decimal `db:"delta"`
}
