package binder

import (
	"fmt"
	"net/http"

	"github.com/eventify-app/eventify/pkg/validator"
)

// DefaultMaxMemory bounds multipart parsing.
const DefaultMaxMemory = 10 << 20

// FormValues reads an urlencoded or multipart form into validator.Values.
// Only the first value of repeated keys is kept.
func FormValues(r *http.Request) (validator.Values, error) {
	mt, err := mediaType(r)
	if err != nil {
		return nil, err
	}

	switch mt {
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxJSONSize)
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
	default:
		return nil, fmt.Errorf("%w: got %s, expected a form", ErrUnsupportedMediaType, mt)
	}

	values := make(validator.Values, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			values[k] = vs[0]
		}
	}
	return values, nil
}

// Values accepts either a JSON body {"values": {...}} or a form.
func Values(r *http.Request) (validator.Values, error) {
	mt, err := mediaType(r)
	if err != nil {
		return nil, err
	}
	if mt != "application/json" {
		return FormValues(r)
	}

	var body struct {
		Values validator.Values `json:"values"`
	}
	if err := JSON(r, &body); err != nil {
		return nil, err
	}
	if body.Values == nil {
		body.Values = validator.Values{}
	}
	return body.Values, nil
}
