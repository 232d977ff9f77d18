package homework

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{fmt.Errorf("%w: dial tcp: refused", ErrTransport), "transport"},
		{&StatusCodeError{Code: 500}, "unexpected_status"},
		{fmt.Errorf("fetch: %w", &StatusCodeError{Code: 404}), "unexpected_status"},
		{fmt.Errorf("%w: eof", ErrMalformedJSON), "malformed_json"},
		{&KeyError{Key: KeyCurrentDate}, "missing_key"},
		{fmt.Errorf("%w: response is string", ErrUnexpectedShape), "unexpected_shape"},
		{&FieldError{Field: FieldName}, "missing_field"},
		{&StatusError{Status: "lost"}, "unknown_status"},
		{ErrDelivery, "delivery"},
		{errors.New("something else"), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, KindOf(tc.err), "%v", tc.err)
	}
}

func TestStatusCodeError_CarriesCode(t *testing.T) {
	var err error = fmt.Errorf("poll: %w", &StatusCodeError{Code: 500})

	var sce *StatusCodeError
	assert.ErrorAs(t, err, &sce)
	assert.Equal(t, 500, sce.Code)
	assert.EqualError(t, err, "poll: unexpected status code 500")
}
