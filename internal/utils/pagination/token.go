package pagination

import (
	"encoding/base64"
	"fmt"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeDateBasedToken creates a token for single date field pagination
func EncodeDateBasedToken(date time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(date.Format(timeFormat)))
}

// DecodeDateBasedToken decodes a token for single date field pagination
func DecodeDateBasedToken(token string) (time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	date, err := time.Parse(timeFormat, string(decodedBytes))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return date, nil
}

// DecodeOptionalToken decodes token when present and returns nil otherwise.
func DecodeOptionalToken(token *string) (*time.Time, error) {
	if token == nil || *token == "" {
		return nil, nil
	}
	date, err := DecodeDateBasedToken(*token)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// Cut trims a date-ordered page fetched with limit+1 rows down to limit rows
// and returns the token of the next page, or nil on the last page.
func Cut[T any](rows []T, limit int, dateOf func(T) time.Time) ([]T, *string) {
	if limit <= 0 || len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	token := EncodeDateBasedToken(dateOf(rows[limit-1]))
	return rows, &token
}
