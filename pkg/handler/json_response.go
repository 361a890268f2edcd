package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/eventify-app/eventify/pkg/binder"
	"github.com/eventify-app/eventify/pkg/validator"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON wraps v in {"data": v} with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as {"error": {...}}. The status is derived from the
// error: validation failures are 422, HTTPError uses its code, binder
// failures map to 400, 413 or 415, anything else is 500.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	r.body.Error = errorToDetail(err, &r.status)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Validation renders a failed validator.Result as 422 with one message per
// field.
func Validation(res validator.Result) Response {
	details := make(map[string][]string, len(res.Errors))
	for field, msg := range res.Errors {
		details[field] = []string{msg}
	}
	return &jsonResponse{
		status: http.StatusUnprocessableEntity,
		body: JSONResponse{Error: &ErrorDetail{
			Code:    "validation_error",
			Message: "Validation failed",
			Details: details,
		}},
	}
}

func errorToDetail(err error, status *int) *ErrorDetail {
	if validator.IsValidationError(err) {
		verrs := validator.ExtractValidationErrors(err)
		*status = http.StatusUnprocessableEntity
		detail := &ErrorDetail{Code: "validation_error", Message: "Validation failed"}
		if m := verrs.Map(); len(m) > 0 {
			detail.Details = make(map[string][]string, len(m))
			maps.Copy(detail.Details, m)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		return &ErrorDetail{Code: httpErr.Key, Message: msg}
	}

	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		*status = ErrRequestTooLarge.Code
		return &ErrorDetail{Code: ErrRequestTooLarge.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		*status = ErrUnsupportedMediaType.Code
		return &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParseForm):
		*status = ErrBadRequest.Code
		return &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{Code: ErrInternalServerError.Key, Message: http.StatusText(http.StatusInternalServerError)}
}

type emptyResponse struct{ status int }

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// NoContent answers 204 without a body.
func NoContent() Response { return emptyResponse{status: http.StatusNoContent} }
