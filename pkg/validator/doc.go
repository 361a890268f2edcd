// Package validator checks form input and scores passwords.
//
// The package has two layers. The lower layer is the Rule value: a boolean
// Check function paired with a translation-friendly ValidationError. Rules
// are evaluated with Apply, which aggregates every failure into a
// ValidationErrors slice that satisfies the error interface, or with First,
// which stops at the first failure.
//
// The upper layer is the form engine. A RuleSet maps field names to a
// FieldRule, a struct of optional checks (required, email, minimum and
// maximum length, cross-field match, custom predicate). Validate turns every
// configured field into an ordered list of Rules and reports the first
// failing one per field:
//
//	res := validator.Validate(validator.Values{
//	    "email":           "jane@example.com",
//	    "password":        "hunter22",
//	    "confirmPassword": "hunter2",
//	}, validator.RuleSet{
//	    "email":           {Required: true, Email: true},
//	    "password":        {Required: true, MinLength: 8},
//	    "confirmPassword": {Required: true, Match: "password", MatchMessage: "Passwords do not match"},
//	})
//	if !res.Valid {
//	    // res.Errors == map[string]string{"confirmPassword": "Passwords do not match"}
//	}
//
// A field that is not required and submitted empty passes without running
// its other checks. The email check is deliberately permissive and only
// requires the local@domain.tld shape.
//
// CheckPasswordStrength scores a password from 0 to 5, one point for each of
// length, lowercase, uppercase, digit and symbol, and maps the score to a
// label and a meter color.
//
// Every function is pure; the package holds no mutable state and is safe for
// concurrent use.
package validator
