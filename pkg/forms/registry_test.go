package forms_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventify-app/eventify/pkg/forms"
	"github.com/eventify-app/eventify/pkg/validator"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newRegistry() *forms.Registry {
	return forms.Default(forms.WithClock(func() time.Time { return fixedNow }))
}

func TestDefault_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"change-password",
		"event",
		"forgot-password",
		"invite",
		"login",
		"register",
		"reset-password",
		"verify-email",
	}, newRegistry().Names())
}

func TestDefault_Register(t *testing.T) {
	t.Parallel()
	reg := newRegistry()

	t.Run("valid submission", func(t *testing.T) {
		res, err := reg.Validate(forms.Register, validator.Values{
			"firstName":       "Jane",
			"lastName":        "Doe",
			"email":           "jane@example.com",
			"password":        "s3cretpass",
			"confirmPassword": "s3cretpass",
		})
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("empty submission", func(t *testing.T) {
		res := reg.MustValidate(forms.Register, validator.Values{})
		assert.Len(t, res.Errors, 5)
		for _, msg := range res.Errors {
			assert.Equal(t, validator.MsgRequired, msg)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		res := reg.MustValidate(forms.Register, validator.Values{
			"firstName":       "Jane",
			"lastName":        "Doe",
			"email":           "jane@example.com",
			"password":        "s3cretpass",
			"confirmPassword": "s3cretpas",
		})
		assert.Equal(t, map[string]string{"confirmPassword": "Passwords do not match"}, res.Errors)
	})
}

func TestDefault_ResetPassword(t *testing.T) {
	t.Parallel()

	res := newRegistry().MustValidate(forms.ResetPassword, validator.Values{
		"email":           "jane@example.com",
		"otp":             "1234567",
		"newPassword":     "short",
		"confirmPassword": "short",
	})
	assert.Equal(t, map[string]string{
		"otp":         "Must be no more than 6 characters",
		"newPassword": "Must be at least 8 characters",
	}, res.Errors)
}

func TestDefault_Event(t *testing.T) {
	t.Parallel()
	reg := newRegistry()

	base := validator.Values{
		"title":    "Launch party",
		"date":     "2025-07-01T18:00",
		"location": "Rooftop",
	}

	res := reg.MustValidate(forms.Event, base)
	assert.True(t, res.Valid, res.Errors)

	past := validator.Values{"title": "Launch party", "date": "2025-05-01T18:00", "location": "Rooftop"}
	res = reg.MustValidate(forms.Event, past)
	assert.Equal(t, "Event date must be in the future", res.Get("date"))

	long := validator.Values{"title": strings.Repeat("x", 101), "date": "2025-07-01", "location": "Rooftop", "description": strings.Repeat("y", 1001)}
	res = reg.MustValidate(forms.Event, long)
	assert.Equal(t, "Must be no more than 100 characters", res.Get("title"))
	assert.Equal(t, "Must be no more than 1000 characters", res.Get("description"))
}

func TestDefault_Invite(t *testing.T) {
	t.Parallel()
	reg := newRegistry()

	res := reg.MustValidate(forms.Invite, validator.Values{"emails": "a@b.co, c@d.io;e@f.org"})
	assert.True(t, res.Valid)

	res = reg.MustValidate(forms.Invite, validator.Values{"emails": "a@b.co, nope"})
	assert.Equal(t, "One or more email addresses are invalid", res.Get("emails"))

	res = reg.MustValidate(forms.Invite, validator.Values{"emails": " "})
	assert.Equal(t, validator.MsgRequired, res.Get("emails"))
}

func TestRegistry_Validate_UnknownForm(t *testing.T) {
	t.Parallel()

	_, err := newRegistry().Validate("missing", validator.Values{})
	assert.ErrorIs(t, err, forms.ErrUnknownForm)

	assert.Panics(t, func() {
		newRegistry().MustValidate("missing", nil)
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := forms.NewRegistry()
	assert.Empty(t, reg.Names())

	assert.ErrorIs(t, reg.Register("", validator.RuleSet{}), forms.ErrEmptyName)
	assert.ErrorIs(t, reg.Register("bad", validator.RuleSet{"x": {MinLength: 5, MaxLength: 2}}), forms.ErrInvalidRule)
	assert.ErrorIs(t, reg.Register("neg", validator.RuleSet{"x": {MinLength: -1}}), forms.ErrInvalidRule)

	rules := validator.RuleSet{"name": {Required: true}}
	require.NoError(t, reg.Register("profile", rules))

	// The registry keeps its own copy.
	rules["age"] = validator.FieldRule{Required: true}
	got, ok := reg.Get("profile")
	require.True(t, ok)
	assert.Len(t, got, 1)

	got["other"] = validator.FieldRule{}
	again, _ := reg.Get("profile")
	assert.Len(t, again, 1)
}

func TestRegistry_Predicates(t *testing.T) {
	t.Parallel()

	reg := forms.NewRegistry(forms.WithClock(func() time.Time { return fixedNow }))

	for _, name := range []string{
		forms.PredicateFutureDate,
		forms.PredicateValidDate,
		forms.PredicateEmailList,
		forms.PredicateStrongPassword,
	} {
		_, ok := reg.Predicate(name)
		assert.True(t, ok, name)
	}

	strong, _ := reg.Predicate(forms.PredicateStrongPassword)
	assert.True(t, strong("Abcdefg1", nil))
	assert.False(t, strong("abcdefgh", nil))

	valid, _ := reg.Predicate(forms.PredicateValidDate)
	assert.True(t, valid("2025-01-01", nil))
	assert.False(t, valid("someday", nil))

	assert.ErrorIs(t, reg.RegisterPredicate("", func(string, validator.Values) bool { return true }), forms.ErrEmptyName)
	assert.ErrorIs(t, reg.RegisterPredicate("nil", nil), forms.ErrInvalidRule)

	require.NoError(t, reg.RegisterPredicate("yes", func(v string, _ validator.Values) bool { return v == "yes" }))
	fn, ok := reg.Predicate("yes")
	require.True(t, ok)
	assert.True(t, fn("yes", nil))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = reg.Register("dynamic", validator.RuleSet{"f": {Required: true}})
				return
			}
			_, _ = reg.Validate(forms.Login, validator.Values{"email": "a@b.co", "password": "x"})
			_ = reg.Names()
		}(i)
	}
	wg.Wait()

	_, ok := reg.Get("dynamic")
	assert.True(t, ok)
}

func TestSplitEmails(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a@b.co", "c@d.io", "e@f.org"}, forms.SplitEmails(" a@b.co,c@d.io ;\ne@f.org,, "))
	assert.Empty(t, forms.SplitEmails(" , ; "))
}
