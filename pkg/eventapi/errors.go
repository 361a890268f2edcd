package eventapi

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEndpoint  = errors.New("eventapi: invalid endpoint")
	ErrUnexpectedStatus = errors.New("eventapi: unexpected response status")
	ErrTemporaryFailure = errors.New("eventapi: temporary failure")
	ErrTimeout          = errors.New("eventapi: request timeout")
	ErrDecodeResponse   = errors.New("eventapi: failed to decode response")
	ErrEmptyResponse    = errors.New("eventapi: response has no data")
)

// ErrorLocation points into the query document.
type ErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ErrorEntry is one element of a GraphQL "errors" array.
type ErrorEntry struct {
	Message    string          `json:"message"`
	Path       []any           `json:"path,omitempty"`
	Locations  []ErrorLocation `json:"locations,omitempty"`
	Extensions map[string]any  `json:"extensions,omitempty"`
}

// GraphQLError is returned when the server answers with a non-empty errors array.
type GraphQLError struct {
	Errors []ErrorEntry
}

func (e *GraphQLError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, entry := range e.Errors {
		msgs = append(msgs, entry.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// PublicMessage returns the first server message. It is meant for end users.
func (e *GraphQLError) PublicMessage() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

// Code returns extensions.code of the first error, if any.
func (e *GraphQLError) Code() string {
	if len(e.Errors) == 0 {
		return ""
	}
	code, _ := e.Errors[0].Extensions["code"].(string)
	return code
}

// IsUnauthenticated reports whether err is a GraphQL UNAUTHENTICATED error.
func IsUnauthenticated(err error) bool {
	var gqlErr *GraphQLError
	return errors.As(err, &gqlErr) && gqlErr.Code() == "UNAUTHENTICATED"
}
