package domain

// UnknownCurrencyNumber marks a currency whose numeric ISO code is not published.
const UnknownCurrencyNumber = -1

// CurrencyCode is an entry of the ISO 4217 reference list. Identity is Code.
type CurrencyCode struct {
	ID       int64  `json:"id"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
	Code     string `json:"code"`   // e.g. "USD"
	Number   int    `json:"number"` // numeric code or UnknownCurrencyNumber
}

// SameValues compares everything except the identity.
func (c CurrencyCode) SameValues(other CurrencyCode) bool {
	return c.Country == other.Country && c.Currency == other.Currency && c.Number == other.Number
}

// WithIdentityOf returns c's values under the identity of stored.
func (c CurrencyCode) WithIdentityOf(stored CurrencyCode) CurrencyCode {
	c.ID = stored.ID
	c.Code = stored.Code
	return c
}
