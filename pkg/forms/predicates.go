package forms

import (
	"strings"
	"time"

	"github.com/eventify-app/eventify/pkg/validator"
)

// Names of the predicates every registry starts with.
const (
	PredicateFutureDate     = "future_date"
	PredicateValidDate      = "valid_date"
	PredicateEmailList      = "email_list"
	PredicateStrongPassword = "strong_password"
)

// StrongPasswordScore is the minimum strength accepted by the strong_password predicate.
const StrongPasswordScore = 4

// SplitEmails splits a list of addresses separated by commas, semicolons or
// whitespace, dropping empty entries.
func SplitEmails(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
}

func builtinPredicates(now func() time.Time) map[string]validator.Predicate {
	return map[string]validator.Predicate{
		PredicateFutureDate: func(value string, _ validator.Values) bool {
			return validator.IsFutureDate(value, now())
		},
		PredicateValidDate: func(value string, _ validator.Values) bool {
			return validator.IsValidDate(value)
		},
		PredicateEmailList: func(value string, _ validator.Values) bool {
			emails := SplitEmails(value)
			if len(emails) == 0 {
				return false
			}
			for _, email := range emails {
				if !validator.IsValidEmail(email) {
					return false
				}
			}
			return true
		},
		PredicateStrongPassword: func(value string, _ validator.Values) bool {
			return validator.CheckPasswordStrength(value).Strength >= StrongPasswordScore
		},
	}
}
