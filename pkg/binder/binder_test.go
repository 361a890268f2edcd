package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventify-app/eventify/pkg/binder"
	"github.com/eventify-app/eventify/pkg/validator"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func jsonRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes verbatim", func(t *testing.T) {
		t.Parallel()
		var req loginRequest
		err := binder.JSON(jsonRequest(`{"email":"a@b.co","password":"  <p@ss>  "}`, "application/json; charset=utf-8"), &req)
		require.NoError(t, err)
		assert.Equal(t, loginRequest{Email: "a@b.co", Password: "  <p@ss>  "}, req)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		err         error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong content type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrFailedToParseJSON},
		{"malformed", `{"email":`, "application/json", binder.ErrFailedToParseJSON},
		{"unknown field", `{"emial":"x"}`, "application/json", binder.ErrFailedToParseJSON},
		{"trailing data", `{"email":"x"} {}`, "application/json", binder.ErrFailedToParseJSON},
		{"too large", `{"email":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`, "application/json", binder.ErrBodyTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req loginRequest
			assert.ErrorIs(t, binder.JSON(jsonRequest(tt.body, tt.contentType), &req), tt.err)
		})
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		v, err := binder.Values(jsonRequest(`{"values":{"email":"a@b.co","password":"x"}}`, "application/json"))
		require.NoError(t, err)
		assert.Equal(t, validator.Values{"email": "a@b.co", "password": "x"}, v)
	})

	t.Run("json without values", func(t *testing.T) {
		t.Parallel()
		v, err := binder.Values(jsonRequest(`{}`, "application/json"))
		require.NoError(t, err)
		assert.Empty(t, v)
		assert.NotNil(t, v)
	})

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"email": {"a@b.co", "ignored"}, "password": {"x"}}
		v, err := binder.Values(jsonRequest(form.Encode(), "application/x-www-form-urlencoded"))
		require.NoError(t, err)
		assert.Equal(t, validator.Values{"email": "a@b.co", "password": "x"}, v)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("title", "Launch"))
		require.NoError(t, mw.Close())

		v, err := binder.Values(jsonRequest(buf.String(), mw.FormDataContentType()))
		require.NoError(t, err)
		assert.Equal(t, validator.Values{"title": "Launch"}, v)
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()
		_, err := binder.Values(jsonRequest("x", "text/csv"))
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}
