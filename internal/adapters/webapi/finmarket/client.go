// Package finmarket implements the rate source backed by the finmarket.ru
// currency archive.
package finmarket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/adapters/webapi"
	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the archive page queried for daily rates.
const DefaultBaseURL = "https://www.finmarket.ru/currency/rates/"

const (
	archiveID    = "10148"
	archiveTable = "karramba"
	rowDate      = "02.01.2006"
)

// currencyIDs are the archive's internal identifiers of the tracked currencies.
var currencyIDs = map[domain.Currency]int{
	domain.GBP: 52146,
	domain.USD: 52148,
	domain.TRY: 52158,
	domain.EUR: 52170,
	domain.CNY: 52207,
	domain.INR: 52238,
	domain.JPY: 52246,
}

// Client fetches daily observations from the archive.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ sources.RateSource = (*Client)(nil)

// NewClient creates a client for the archive at baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// FetchRates returns the archive rows for currency between start and end inclusive.
// Transport, status and parse failures are reported as apperrors.ErrSource.
func (c *Client) FetchRates(ctx context.Context, currency domain.Currency, start, end time.Time) ([]domain.Observation, error) {
	rawURL, err := c.archiveURL(currency, start, end)
	if err != nil {
		return nil, err
	}

	doc, err := webapi.FetchDocument(ctx, c.http, rawURL)
	if err != nil {
		return nil, err
	}
	table := webapi.FindTable(doc, archiveTable)
	if table == nil {
		return nil, apperrors.NewSourceError(fmt.Sprintf("rate table %q not found", archiveTable), nil)
	}

	rows := webapi.BodyRows(table)
	observations := make([]domain.Observation, 0, len(rows))
	for i, cells := range rows {
		o, err := parseRow(currency, cells)
		if err != nil {
			return nil, apperrors.NewSourceError(fmt.Sprintf("malformed rate row %d", i+1), err)
		}
		observations = append(observations, o)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Fetched rates",
		"currency", currency.String(),
		"start", domain.FormatDate(start),
		"end", domain.FormatDate(end),
		"rows", len(observations))
	return observations, nil
}

func (c *Client) archiveURL(currency domain.Currency, start, end time.Time) (string, error) {
	id, ok := currencyIDs[currency]
	if !ok {
		return "", apperrors.NewSourceError(fmt.Sprintf("no archive id for currency %s", currency), nil)
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", apperrors.NewSourceError("invalid archive base URL", err)
	}

	q := u.Query()
	q.Set("id", archiveID)
	q.Set("pv", "1")
	q.Set("cur", strconv.Itoa(id))
	q.Set("bd", strconv.Itoa(start.Day()))
	q.Set("bm", strconv.Itoa(int(start.Month())))
	q.Set("by", strconv.Itoa(start.Year()))
	q.Set("ed", strconv.Itoa(end.Day()))
	q.Set("em", strconv.Itoa(int(end.Month())))
	q.Set("ey", strconv.Itoa(end.Year()))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// parseRow reads the date, count, rate and change cells of one archive row.
// Decimals use a comma separator and gains carry an explicit plus sign.
func parseRow(currency domain.Currency, cells []string) (domain.Observation, error) {
	if len(cells) < 4 {
		return domain.Observation{}, fmt.Errorf("expected 4 cells, got %d", len(cells))
	}

	date, err := time.Parse(rowDate, cells[0])
	if err != nil {
		return domain.Observation{}, fmt.Errorf("date %q: %w", cells[0], err)
	}
	count, err := strconv.Atoi(strings.ReplaceAll(cells[1], " ", ""))
	if err != nil {
		return domain.Observation{}, fmt.Errorf("count %q: %w", cells[1], err)
	}
	if count < 0 {
		return domain.Observation{}, fmt.Errorf("count %q: must not be negative", cells[1])
	}
	rate, err := parseDecimal(cells[2])
	if err != nil {
		return domain.Observation{}, fmt.Errorf("rate %q: %w", cells[2], err)
	}
	change, err := parseDecimal(cells[3])
	if err != nil {
		return domain.Observation{}, fmt.Errorf("change %q: %w", cells[3], err)
	}

	return domain.Observation{
		Date:   date,
		Code:   currency,
		Count:  count,
		Rate:   rate,
		Change: change,
	}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer(",", ".", "+", "", " ", "").Replace(s)
	return decimal.NewFromString(s)
}
