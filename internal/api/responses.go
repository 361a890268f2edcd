package api

import (
	"context"
	"errors"

	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/handler"
	"github.com/eventify-app/eventify/pkg/logger"
	"github.com/eventify-app/eventify/pkg/validator"
)

const msgRequestFailed = "Request failed. Please try again."

// validate checks values against the named form and returns a 422 response
// when they fail, nil otherwise.
func (a *API) validate(ctx context.Context, form string, values validator.Values) handler.Response {
	res, err := a.forms.Validate(form, values)
	if err != nil {
		a.log.ErrorContext(ctx, "Form is not registered", logger.Form(form), logger.Error(err))
		return handler.JSONError(err)
	}
	if res.Valid {
		return nil
	}
	a.log.DebugContext(ctx, "Form validation failed",
		logger.Form(form),
		logger.Fields(res.Failures.Fields()...),
	)
	return handler.Validation(res)
}

// remoteError maps a failed GraphQL call to a response. Messages reported by
// the API are passed through; transport failures are logged and hidden.
func (a *API) remoteError(ctx context.Context, err error) handler.Response {
	var gqlErr *eventapi.GraphQLError
	switch {
	case eventapi.IsUnauthenticated(err):
		return handler.JSONError(handler.ErrUnauthorized.WithMessage(unauthenticatedMessage(err)))
	case errors.As(err, &gqlErr):
		return handler.JSONError(handler.ErrBadRequest.WithMessage(gqlErr.PublicMessage()))
	case errors.Is(err, eventapi.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		a.log.ErrorContext(ctx, "Eventify API timed out", logger.Component("eventapi"), logger.Error(err))
		return handler.JSONError(handler.ErrGatewayTimeout)
	}
	a.log.ErrorContext(ctx, "Eventify API request failed", logger.Component("eventapi"), logger.Error(err))
	return handler.JSONError(handler.ErrBadGateway)
}

func unauthenticatedMessage(err error) string {
	var gqlErr *eventapi.GraphQLError
	if errors.As(err, &gqlErr) && gqlErr.PublicMessage() != "" {
		return gqlErr.PublicMessage()
	}
	return "Authentication required"
}

// mutation renders data with status when the API reports success and a 400
// carrying the API message otherwise.
func mutation(res eventapi.Result, status int, data any) handler.Response {
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = msgRequestFailed
		}
		return handler.JSONError(handler.ErrBadRequest.WithMessage(msg))
	}
	return handler.JSON(data, handler.WithJSONStatus(status))
}
