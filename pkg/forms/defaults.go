package forms

import (
	"github.com/eventify-app/eventify/pkg/validator"
)

// Built-in form names.
const (
	Register       = "register"
	Login          = "login"
	ForgotPassword = "forgot-password"
	VerifyEmail    = "verify-email"
	ResetPassword  = "reset-password"
	ChangePassword = "change-password"
	Event          = "event"
	Invite         = "invite"
)

const msgPasswordsMismatch = "Passwords do not match"

// Default returns a registry holding every built-in form.
func Default(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	for name, rules := range r.builtinForms() {
		// Built-in rules are static and always pass checkRule.
		_ = r.Register(name, rules)
	}
	return r
}

func (r *Registry) builtinForms() map[string]validator.RuleSet {
	email := validator.FieldRule{Required: true, Email: true}
	otp := validator.FieldRule{Required: true, MinLength: 6, MaxLength: 6}
	newPassword := validator.FieldRule{Required: true, MinLength: validator.MinPasswordLength}

	futureDate, _ := r.Predicate(PredicateFutureDate)
	emailList, _ := r.Predicate(PredicateEmailList)

	return map[string]validator.RuleSet{
		Register: {
			"firstName":       {Required: true},
			"lastName":        {Required: true},
			"email":           email,
			"password":        newPassword,
			"confirmPassword": {Required: true, Match: "password", MatchMessage: msgPasswordsMismatch},
		},
		Login: {
			"email":    email,
			"password": {Required: true},
		},
		ForgotPassword: {
			"email": email,
		},
		VerifyEmail: {
			"email": email,
			"otp":   otp,
		},
		ResetPassword: {
			"email":           email,
			"otp":             otp,
			"newPassword":     newPassword,
			"confirmPassword": {Required: true, Match: "newPassword", MatchMessage: msgPasswordsMismatch},
		},
		ChangePassword: {
			"currentPassword": {Required: true},
			"newPassword":     newPassword,
			"confirmPassword": {Required: true, Match: "newPassword", MatchMessage: msgPasswordsMismatch},
		},
		Event: {
			"title":       {Required: true, MaxLength: 100},
			"description": {MaxLength: 1000},
			"date": {
				Required:      true,
				Custom:        futureDate,
				CustomMessage: "Event date must be in the future",
			},
			"location": {Required: true, MaxLength: 200},
		},
		Invite: {
			"emails": {
				Required:      true,
				Custom:        emailList,
				CustomMessage: "One or more email addresses are invalid",
			},
		},
	}
}
