package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventify-app/eventify/pkg/validator"
)

func TestIsRequired(t *testing.T) {
	assert.False(t, validator.IsRequired("", false))
	assert.False(t, validator.IsRequired("value", false))
	assert.False(t, validator.IsRequired("", true))
	assert.False(t, validator.IsRequired(" \t ", true))
	assert.True(t, validator.IsRequired("x", true))
	assert.False(t, validator.IsRequired("\ufeff", true))
	assert.False(t, validator.IsRequired("\u00a0\u3000\u2028", true))
	assert.True(t, validator.IsRequired("\u0085", true))
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "a b", validator.Trim("\ufeff\v a b\u00a0\u205f"))
	assert.Equal(t, "\u0085x\u0085", validator.Trim("\u0085x\u0085"))
	assert.Equal(t, "", validator.Trim("\u2000\u200a"))
}

func TestRequiredField(t *testing.T) {
	t.Run("default message", func(t *testing.T) {
		rule := validator.RequiredField("email", "", true, "")
		assert.False(t, rule.Check())
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "This field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "email"}, rule.Error.TranslationValues)
	})

	t.Run("override message", func(t *testing.T) {
		rule := validator.RequiredField("email", "", true, "Email is required")
		assert.Equal(t, "Email is required", rule.Error.Message)
	})
}

func TestEmail(t *testing.T) {
	assert.True(t, validator.Email("email", "").Check())
	assert.True(t, validator.Email("email", "jane@example.com").Check())
	assert.False(t, validator.Email("email", "jane@example").Check())
	assert.Equal(t, "validation.email", validator.Email("email", "x").Error.TranslationKey)
}

func TestMinLenMaxLen(t *testing.T) {
	minRule := validator.MinLen("password", "1234567", 8)
	assert.False(t, minRule.Check())
	assert.Equal(t, "Must be at least 8 characters", minRule.Error.Message)
	assert.Equal(t, map[string]any{"field": "password", "min": 8}, minRule.Error.TranslationValues)
	assert.True(t, validator.MinLen("password", "12345678", 8).Check())

	maxRule := validator.MaxLen("otp", "1234567", 6)
	assert.False(t, maxRule.Check())
	assert.Equal(t, "Must be no more than 6 characters", maxRule.Error.Message)
	assert.True(t, validator.MaxLen("otp", "123456", 6).Check())
}

func TestMatch(t *testing.T) {
	rule := validator.Match("confirm", "a", "password", "b", "")
	assert.False(t, rule.Check())
	assert.Equal(t, "Fields do not match", rule.Error.Message)
	assert.Equal(t, "password", rule.Error.TranslationValues["other"])

	assert.True(t, validator.Match("confirm", "", "password", "", "").Check())
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, validator.Length(""))
	assert.Equal(t, 5, validator.Length("hello"))
	assert.Equal(t, 4, validator.Length("日本語!"))
	assert.Equal(t, 2, validator.Length("\U0001F600"))
	assert.Equal(t, 5, validator.Length("a\U0001F600\U0001F44D"))
}
