package apperrors

import "errors"

// ErrProviderUnreachable indicates the external rate provider could not be
// reached (connection failure, DNS error, timeout).
var ErrProviderUnreachable = errors.New("rate provider unreachable")

// ErrMalformedResponse indicates the provider responded but the payload could
// not be parsed into a rate.
var ErrMalformedResponse = errors.New("malformed provider response")

// ErrInvalidRate indicates the parsed rate is missing, zero or negative.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
