package validator

import (
	"sort"
)

// Values holds the current value of every field of a submitted form.
// A missing key means the field was not submitted at all.
type Values map[string]string

// Lookup returns the value of field and whether it was submitted.
func (v Values) Lookup(field string) (string, bool) {
	value, ok := v[field]
	return value, ok
}

// Predicate is a custom check over a field value and the whole form.
type Predicate func(value string, values Values) bool

// FieldRule configures the checks applied to one field. The zero value of
// every option disables the corresponding check.
type FieldRule struct {
	Required        bool
	RequiredMessage string
	Email           bool
	MinLength       int
	MaxLength       int
	Match           string
	MatchMessage    string
	Custom          Predicate
	CustomMessage   string
}

// RuleSet maps field names to their rules.
type RuleSet map[string]FieldRule

// Fields returns the configured field names in sorted order.
func (rs RuleSet) Fields() []string {
	fields := make([]string, 0, len(rs))
	for field := range rs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Result is the outcome of validating a form.
type Result struct {
	Valid  bool              `json:"isValid"`
	Errors map[string]string `json:"errors"`

	// Failures holds the same failures with translation metadata, ordered by field.
	Failures ValidationErrors `json:"-"`
}

// Err returns nil for a valid result and the failures otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Failures
}

// Get returns the error message of field, or an empty string.
func (r Result) Get(field string) string {
	return r.Errors[field]
}

// Has reports whether field failed validation.
func (r Result) Has(field string) bool {
	_, ok := r.Errors[field]
	return ok
}

// Validate checks values against rules. Every field listed in rules is
// evaluated independently and reports at most one message: the first
// failing check in the order required, email, minimum length, maximum
// length, match, custom. Fields without rules are ignored.
func Validate(values Values, rules RuleSet) Result {
	res := Result{Errors: make(map[string]string)}

	for _, field := range rules.Fields() {
		if err := validateField(field, values, rules[field]); err != nil {
			res.Errors[field] = err.Message
			res.Failures.Add(*err)
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

func validateField(field string, values Values, rule FieldRule) *ValidationError {
	value, present := values.Lookup(field)

	if rule.Required {
		if err := First(RequiredField(field, value, present, rule.RequiredMessage)); err != nil {
			return err
		}
	} else if value == "" {
		// Optional and empty: nothing else applies.
		return nil
	}

	checks := make([]Rule, 0, 5)
	if rule.Email {
		checks = append(checks, Email(field, value))
	}
	if rule.MinLength > 0 {
		checks = append(checks, MinLen(field, value, rule.MinLength))
	}
	if rule.MaxLength > 0 {
		checks = append(checks, MaxLen(field, value, rule.MaxLength))
	}
	if rule.Match != "" {
		checks = append(checks, Match(field, value, rule.Match, values[rule.Match], rule.MatchMessage))
	}
	if rule.Custom != nil {
		checks = append(checks, Custom(field, value, values, rule.Custom, rule.CustomMessage))
	}

	return First(checks...)
}
