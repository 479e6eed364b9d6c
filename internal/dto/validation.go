package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom tags and struct rules used by the
// request DTOs on v. It is safe to call more than once.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("currency", validateCurrency); err != nil {
		return fmt.Errorf("register currency validation: %w", err)
	}
	v.RegisterStructValidation(validateSyncRange, SyncRatesRequest{})
	return nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, err := domain.ParseCurrency(fl.Field().String())
	return err == nil
}

// validateSyncRange rejects ranges that are empty or reversed, end in the
// future, or span more than MaxSyncSpanDays.
func validateSyncRange(sl validator.StructLevel) {
	req := sl.Current().Interface().(SyncRatesRequest)
	start, errStart := domain.ParseDate(req.StartDate)
	end, errEnd := domain.ParseDate(req.EndDate)
	if errStart != nil || errEnd != nil {
		// Field-level tags report malformed dates.
		return
	}

	if !start.Before(end) {
		sl.ReportError(req.EndDate, "EndDate", "endDate", "after_start", "")
		return
	}
	if end.After(domain.TruncateToDate(time.Now().UTC())) {
		sl.ReportError(req.EndDate, "EndDate", "endDate", "not_future", "")
	}
	if end.Sub(start) > MaxSyncSpanDays*24*time.Hour {
		sl.ReportError(req.StartDate, "StartDate", "startDate", "max_span", "")
	}
}

// Range returns the parsed currencies and inclusive date range of a request
// that already passed validation.
func (r SyncRatesRequest) Range() ([]domain.Currency, time.Time, time.Time, error) {
	currencies, err := ParseCurrencies(r.Currencies)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	end, err := domain.ParseDate(r.EndDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	return currencies, start, end, nil
}

// ParseCurrencies converts raw codes to the tracked currency enumeration,
// dropping duplicates while keeping the first-seen order.
func ParseCurrencies(raw []string) ([]domain.Currency, error) {
	seen := make(map[domain.Currency]struct{}, len(raw))
	out := make([]domain.Currency, 0, len(raw))
	for _, s := range raw {
		c, err := domain.ParseCurrency(s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// ValidationMessage renders a binding error as a user-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind().String() == "slice" {
			return field + " must contain at least " + fe.Param() + " item(s)"
		}
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "datetime":
		return field + " must be a date in yyyy-mm-dd format"
	case "currency":
		return fmt.Sprintf("%v is not a supported currency", fe.Value())
	case "after_start":
		return "start date must be before end date"
	case "not_future":
		return "end date must not be in the future"
	case "max_span":
		return fmt.Sprintf("date range must not exceed %d days", MaxSyncSpanDays)
	}
	return field + " failed " + fe.Tag() + " validation"
}
