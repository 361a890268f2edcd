package forms

import "errors"

var (
	// ErrUnknownForm is returned when no rule set is registered under a name.
	ErrUnknownForm = errors.New("unknown form")

	// ErrUnknownPredicate is returned when a rule references an unregistered predicate.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrEmptyName is returned when registering a form or predicate without a name.
	ErrEmptyName = errors.New("empty name")

	// ErrInvalidRule is returned for rules with contradictory or negative bounds.
	ErrInvalidRule = errors.New("invalid field rule")

	// ErrFailedToParseYAML is returned when a rule set document cannot be decoded.
	ErrFailedToParseYAML = errors.New("failed to parse forms YAML")
)
