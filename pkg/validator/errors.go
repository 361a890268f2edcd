package validator

import "errors"

// ErrInvalidDate is returned when a string cannot be parsed as a date.
var ErrInvalidDate = errors.New("invalid date")
