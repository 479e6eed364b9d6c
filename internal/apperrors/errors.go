package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrSource indicates that fetching data from an external source failed
// (transport, unexpected status or unparseable document).
var ErrSource = errors.New("external source error")

// ErrConfiguration indicates that required configuration (e.g. the baseline
// date parameter) is missing or malformed.
var ErrConfiguration = errors.New("configuration error")

// ErrStoreWrite indicates that a write was rejected by the store, typically a
// constraint violation or an invalid record.
var ErrStoreWrite = errors.New("store write error")

// AppError is an error carrying an HTTP status hint, a kind sentinel and the
// underlying cause. errors.Is matches both the kind and the cause.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the kind sentinel and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError creates a generic application error with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an error of kind ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Kind: ErrNotFound}
}

// NewValidationError creates an error of kind ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrValidation}
}

// NewSourceError creates an error of kind ErrSource.
func NewSourceError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: message, Kind: ErrSource, Err: err}
}

// NewConfigurationError creates an error of kind ErrConfiguration.
func NewConfigurationError(message string, err error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Kind: ErrConfiguration, Err: err}
}

// NewStoreWriteError creates an error of kind ErrStoreWrite.
func NewStoreWriteError(message string, err error) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Kind: ErrStoreWrite, Err: err}
}

// StatusCode returns the HTTP status that best describes err.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreWrite), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrSource):
		return http.StatusBadGateway
	case errors.Is(err, ErrConfiguration):
		return http.StatusServiceUnavailable
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
