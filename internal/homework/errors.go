package homework

import (
	"errors"
	"fmt"
)

var (
	ErrTransport       = errors.New("homework api unreachable")
	ErrUnexpectedCode  = errors.New("unexpected status code")
	ErrMalformedJSON   = errors.New("malformed json body")
	ErrMissingKey      = errors.New("missing key in api response")
	ErrUnexpectedShape = errors.New("unexpected api response shape")
	ErrMissingField    = errors.New("homework is missing a field")
	ErrUnknownStatus   = errors.New("unrecognized homework status")
	ErrDelivery        = errors.New("notification delivery failed")
)

// StatusCodeError is returned when the homework API answers with anything but 200.
type StatusCodeError struct {
	Code int
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

func (e *StatusCodeError) Is(target error) bool { return target == ErrUnexpectedCode }

// KeyError names the top-level response key that was absent.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("missing key %q in api response", e.Key)
}

func (e *KeyError) Is(target error) bool { return target == ErrMissingKey }

// FieldError names the homework field that was absent.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("homework is missing field %q", e.Field)
}

func (e *FieldError) Is(target error) bool { return target == ErrMissingField }

// StatusError carries a status value outside the verdict table.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unrecognized homework status %q", e.Status)
}

func (e *StatusError) Is(target error) bool { return target == ErrUnknownStatus }

var kinds = []struct {
	err  error
	name string
}{
	{ErrTransport, "transport"},
	{ErrUnexpectedCode, "unexpected_status"},
	{ErrMalformedJSON, "malformed_json"},
	{ErrMissingKey, "missing_key"},
	{ErrUnexpectedShape, "unexpected_shape"},
	{ErrMissingField, "missing_field"},
	{ErrUnknownStatus, "unknown_status"},
	{ErrDelivery, "delivery"},
}

// KindOf classifies err into one of the known failure kinds, or "unknown".
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}
