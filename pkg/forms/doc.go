// Package forms keeps the named rule sets the Eventify client validates its
// forms with.
//
// Default returns a Registry with the built-in forms (register, login,
// forgot-password, verify-email, reset-password, change-password, event and
// invite). Additional rule sets can be registered in code or loaded from
// YAML, where custom checks are referenced by predicate name:
//
//	forms:
//	  rsvp:
//	    email: {required: true, email: true}
//	    date:  {required: true, custom: future_date, customMessage: "Pick a future date"}
//
//	reg := forms.Default()
//	if err := reg.LoadFile("forms.yaml"); err != nil {
//	    return err
//	}
//	res, err := reg.Validate("rsvp", validator.Values{"email": "jane@example.com"})
package forms
