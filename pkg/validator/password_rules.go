package validator

import (
	"regexp"
)

// Strength meter colors.
const (
	ColorNeutral = "neutral"
	ColorError   = "error"
	ColorWarning = "warning"
	ColorSuccess = "success"
)

// MinPasswordLength is the length a password needs to satisfy the length check.
const MinPasswordLength = 8

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// strengthLevels is indexed by the number of satisfied checks.
var strengthLevels = [...]struct {
	label string
	color string
}{
	{"Very Weak", ColorError},
	{"Weak", ColorError},
	{"Fair", ColorWarning},
	{"Good", ColorWarning},
	{"Strong", ColorSuccess},
	{"Very Strong", ColorSuccess},
}

// PasswordChecks lists the individual complexity criteria.
type PasswordChecks struct {
	Length    bool `json:"length"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`
}

// Count returns the number of satisfied criteria.
func (c PasswordChecks) Count() int {
	n := 0
	for _, ok := range []bool{c.Length, c.Lowercase, c.Uppercase, c.Number, c.Special} {
		if ok {
			n++
		}
	}
	return n
}

// PasswordStrength is the heuristic score shown by a strength meter.
type PasswordStrength struct {
	Strength int            `json:"strength"`
	Label    string         `json:"label"`
	Color    string         `json:"color"`
	Checks   PasswordChecks `json:"checks"`
}

// CheckPasswordStrength scores password from 0 to 5, one point per satisfied
// criterion. An empty password scores 0 with the "None" label.
func CheckPasswordStrength(password string) PasswordStrength {
	if password == "" {
		return PasswordStrength{Strength: 0, Label: "None", Color: ColorNeutral}
	}

	checks := PasswordChecks{
		Length:    Length(password) >= MinPasswordLength,
		Lowercase: lowercaseRegex.MatchString(password),
		Uppercase: uppercaseRegex.MatchString(password),
		Number:    digitRegex.MatchString(password),
		Special:   specialCharRegex.MatchString(password),
	}

	strength := checks.Count()
	level := strengthLevels[strength]

	return PasswordStrength{
		Strength: strength,
		Label:    level.label,
		Color:    level.color,
		Checks:   checks,
	}
}

// StrongPassword fails when fewer than minScore criteria are satisfied.
func StrongPassword(field, value string, minScore int) Rule {
	return Rule{
		Check: func() bool {
			return CheckPasswordStrength(value).Strength >= minScore
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Password is too weak",
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field":     field,
				"min_score": minScore,
			},
		},
	}
}
