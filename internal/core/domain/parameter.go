package domain

// BaselineParameterName names the parameter holding the baseline ("standard") date.
const BaselineParameterName = "std_date"

// Parameter is a named, opaque configuration value persisted in the store.
type Parameter struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}
