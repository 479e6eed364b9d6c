// Package iban implements the currency-code source backed by the iban.ru
// ISO 4217 table.
package iban

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/adapters/webapi"
	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
)

// DefaultURL is the page listing the currency codes.
const DefaultURL = "https://www.iban.ru/currency-codes"

const codesTable = "table table-bordered downloads tablesorter"

// Client fetches the currency-code reference list.
type Client struct {
	url  string
	http *http.Client
}

var _ sources.CodeSource = (*Client)(nil)

// NewClient creates a client reading the table at pageURL (DefaultURL when empty).
func NewClient(pageURL string, httpClient *http.Client) *Client {
	if pageURL == "" {
		pageURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: pageURL, http: httpClient}
}

// FetchCurrencyCodes returns every row of the table that carries an ISO code.
// A row without a numeric code gets domain.UnknownCurrencyNumber.
func (c *Client) FetchCurrencyCodes(ctx context.Context) ([]domain.CurrencyCode, error) {
	doc, err := webapi.FetchDocument(ctx, c.http, c.url)
	if err != nil {
		return nil, err
	}
	table := webapi.FindTable(doc, codesTable)
	if table == nil {
		return nil, apperrors.NewSourceError("currency code table not found", nil)
	}

	rows := webapi.BodyRows(table)
	codes := make([]domain.CurrencyCode, 0, len(rows))
	for i, cells := range rows {
		if len(cells) < 4 {
			return nil, apperrors.NewSourceError(fmt.Sprintf("malformed currency code row %d: expected 4 cells, got %d", i+1, len(cells)), nil)
		}
		if cells[2] == "" {
			continue
		}
		number, err := parseNumber(cells[3])
		if err != nil {
			return nil, apperrors.NewSourceError(fmt.Sprintf("malformed currency code row %d", i+1), err)
		}
		codes = append(codes, domain.CurrencyCode{
			Country:  cells[0],
			Currency: cells[1],
			Code:     strings.ToUpper(cells[2]),
			Number:   number,
		})
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Fetched currency codes", "url", c.url, "rows", len(codes))
	return codes, nil
}

func parseNumber(s string) (int, error) {
	if s == "" {
		return domain.UnknownCurrencyNumber, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", s, err)
	}
	return n, nil
}
