package format

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultTruncateLength is used by Truncate when no positive limit is given.
const DefaultTruncateLength = 100

const (
	unknownUser     = "Unknown User"
	unknownInitials = "?"
)

var (
	printer = message.NewPrinter(language.AmericanEnglish)
	upper   = cases.Upper(language.Und)
)

// FullName joins the trimmed first and last name.
func FullName(firstName, lastName string) string {
	full := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if full == "" {
		return unknownUser
	}
	return full
}

// Initials returns the upper-cased first letter of each name part.
func Initials(firstName, lastName string) string {
	initials := firstRune(firstName) + firstRune(lastName)
	if initials == "" {
		return unknownInitials
	}
	return upper.String(initials)
}

func firstRune(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

// MaskEmail hides most of the local part: at most three leading characters
// (and no more than half of it) stay visible, the rest becomes "***".
// Strings without "@" are returned unchanged.
func MaskEmail(email string) string {
	if email == "" || !strings.Contains(email, "@") {
		return email
	}

	parts := strings.Split(email, "@")
	username, domain := []rune(parts[0]), parts[1]

	visible := min(3, len(username)/2)
	return string(username[:visible]) + "***@" + domain
}

// Number formats n with en-US digit grouping and at most three fraction digits.
func Number(n float64) string {
	return printer.Sprint(number.Decimal(n, number.MaxFractionDigits(3)))
}

// Truncate shortens text to max characters and appends "...". Text that
// already fits is returned unchanged.
func Truncate(text string, max int) string {
	if max <= 0 {
		max = DefaultTruncateLength
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:max])) + "..."
}
