package validator

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04", // <input type="datetime-local">
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	"2006-01",
	"2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate parses the date formats a browser form or the API produce.
// Strings of more than four digits are read as Unix milliseconds; four
// digits are a year.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	if len(value) > 4 {
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC(), nil
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Join(ErrInvalidDate, errors.New(value))
}

// IsValidDate reports whether value parses as a date.
func IsValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// IsFutureDate reports whether value is a valid date strictly after now.
func IsFutureDate(value string, now time.Time) bool {
	t, err := ParseDate(value)
	if err != nil {
		return false
	}
	return t.After(now)
}
