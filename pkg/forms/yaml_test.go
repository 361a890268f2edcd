package forms_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventify-app/eventify/pkg/forms"
	"github.com/eventify-app/eventify/pkg/validator"
)

const rsvpYAML = `
forms:
  rsvp:
    email:
      required: true
      email: true
    date:
      required: true
      custom: future_date
      customMessage: Pick a future date
    guests:
      maxLength: 2
  login:
    email:
      required: true
      requiredMessage: Email please
`

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	require.NoError(t, reg.LoadYAML(strings.NewReader(rsvpYAML)))

	assert.Contains(t, reg.Names(), "rsvp")

	res, err := reg.Validate("rsvp", validator.Values{
		"email":  "jane@example.com",
		"date":   "2024-01-01",
		"guests": "100",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"date":   "Pick a future date",
		"guests": "Must be no more than 2 characters",
	}, res.Errors)

	// Loaded forms replace built-ins with the same name.
	res = reg.MustValidate(forms.Login, validator.Values{})
	assert.Equal(t, map[string]string{"email": "Email please"}, res.Errors)
}

func TestLoadYAML_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "unknown predicate",
			doc:  "forms:\n  f:\n    x: {custom: nope}\n",
			err:  forms.ErrUnknownPredicate,
		},
		{
			name: "bounds",
			doc:  "forms:\n  f:\n    x: {minLength: 9, maxLength: 3}\n",
			err:  forms.ErrInvalidRule,
		},
		{
			name: "unknown key",
			doc:  "forms:\n  f:\n    x: {requird: true}\n",
			err:  forms.ErrFailedToParseYAML,
		},
		{
			name: "malformed",
			doc:  "forms: [",
			err:  forms.ErrFailedToParseYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg := forms.NewRegistry()
			err := reg.LoadYAML(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, reg.Names())
		})
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	t.Parallel()

	reg := forms.NewRegistry()
	require.NoError(t, reg.LoadYAML(strings.NewReader("")))
	assert.Empty(t, reg.Names())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "forms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rsvpYAML), 0o600))

	reg := forms.NewRegistry()
	require.NoError(t, reg.LoadFile(path))
	assert.Equal(t, []string{"login", "rsvp"}, reg.Names())

	assert.Error(t, reg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
