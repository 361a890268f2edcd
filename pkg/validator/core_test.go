package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventify-app/eventify/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "password", Message: "too short"},
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "too weak"},
	}

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "too weak"}, errs.Get("password"))
	assert.Nil(t, errs.Get("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Equal(t, map[string][]string{
		"password": {"too short", "too weak"},
		"email":    {"is required"},
	}, errs.Map())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors(nil).IsEmpty())
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "bad"},
		}
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("aggregates every failure", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"a", "b"}, errs.Fields())
	})
}

func TestFirst(t *testing.T) {
	var evaluated []string
	rule := func(name string, ok bool) validator.Rule {
		return validator.Rule{
			Check: func() bool {
				evaluated = append(evaluated, name)
				return ok
			},
			Error: validator.ValidationError{Field: "f", Message: name},
		}
	}

	t.Run("stops at first failure", func(t *testing.T) {
		evaluated = nil
		err := validator.First(rule("one", true), rule("two", false), rule("three", false))
		require.NotNil(t, err)
		assert.Equal(t, "two", err.Message)
		assert.Equal(t, []string{"one", "two"}, evaluated)
	})

	t.Run("returns nil when everything passes", func(t *testing.T) {
		evaluated = nil
		assert.Nil(t, validator.First(rule("one", true), rule("two", true)))
		assert.Len(t, evaluated, 2)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.ValidationErrors{{Field: "email", Message: "is required"}}
		err := fmt.Errorf("register: %w", inner)

		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, inner, validator.ExtractValidationErrors(err))
	})
}
