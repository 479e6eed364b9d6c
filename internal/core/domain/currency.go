package domain

import (
	"fmt"
	"strings"
)

// Currency is one of the currencies whose rates are tracked.
type Currency string

const (
	GBP Currency = "GBP"
	USD Currency = "USD"
	TRY Currency = "TRY"
	EUR Currency = "EUR"
	CNY Currency = "CNY"
	INR Currency = "INR"
	JPY Currency = "JPY"
)

var supportedCurrencies = []Currency{GBP, USD, TRY, EUR, CNY, INR, JPY}

// SupportedCurrencies returns the tracked currencies in display order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsValid reports whether c is a tracked currency.
func (c Currency) IsValid() bool {
	for _, s := range supportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency normalizes s and checks it against the tracked currencies.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported currency %q", s)
	}
	return c, nil
}
