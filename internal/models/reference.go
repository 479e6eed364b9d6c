package models

// CurrencyCode is the row shape of the currency_codes table.
type CurrencyCode struct {
	ID       int64  `db:"id"`
	Country  string `db:"country"`
	Currency string `db:"currency"`
	Code     string `db:"code"`
	Number   int    `db:"number"`
}

// Parameter is the row shape of the parameters table.
type Parameter struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Value string `db:"value"`
}
