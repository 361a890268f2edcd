package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Default messages shown next to a form field.
const (
	MsgRequired = "This field is required"
	MsgEmail    = "Please enter a valid email address"
	MsgMatch    = "Fields do not match"
	MsgCustom   = "Invalid value"
)

// whitespaceClass is the ECMAScript WhiteSpace and LineTerminator set. It is
// wider than Go's \s, which only covers ASCII.
const whitespaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// emailRegex is intentionally permissive: one "@", then a dot somewhere in
// the domain part, no whitespace anywhere.
var emailRegex = regexp.MustCompile(`^[^@` + whitespaceClass + `]+@[^@` + whitespaceClass + `]+\.[^@` + whitespaceClass + `]+$`)

// IsWhitespace reports whether r belongs to the ECMAScript whitespace set
// used by trimming and the email check. U+0085 is not part of it.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// Trim removes leading and trailing whitespace as defined by IsWhitespace.
func Trim(value string) string {
	return strings.TrimFunc(value, IsWhitespace)
}

// IsValidEmail reports whether value has the local@domain.tld shape.
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsRequired reports whether a value counts as filled in. An absent value
// or one made only of whitespace does not.
func IsRequired(value string, present bool) bool {
	return present && Trim(value) != ""
}

// Length returns the length of value in UTF-16 code units, so characters
// outside the Basic Multilingual Plane (most emoji) count twice.
func Length(value string) int {
	n := 0
	for _, r := range value {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// RequiredField fails when the value is absent or blank.
func RequiredField(field, value string, present bool, message string) Rule {
	return Rule{
		Check: func() bool {
			return IsRequired(value, present)
		},
		Error: ValidationError{
			Field:          field,
			Message:        orDefault(message, MsgRequired),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Email fails for non-empty values that are not shaped like an address.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || IsValidEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        MsgEmail,
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen fails for non-empty values shorter than min characters.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || Length(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Must be at least %d characters", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen fails for non-empty values longer than max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || Length(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Must be no more than %d characters", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Match fails unless value equals other exactly. No trimming is applied.
func Match(field, value, otherField, other, message string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        orDefault(message, MsgMatch),
			TranslationKey: "validation.match",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}

// Custom wraps an arbitrary predicate over the field value and the whole form.
func Custom(field, value string, values Values, fn Predicate, message string) Rule {
	return Rule{
		Check: func() bool {
			return fn(value, values)
		},
		Error: ValidationError{
			Field:          field,
			Message:        orDefault(message, MsgCustom),
			TranslationKey: "validation.custom",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
