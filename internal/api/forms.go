package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventify-app/eventify/pkg/binder"
	"github.com/eventify-app/eventify/pkg/forms"
	"github.com/eventify-app/eventify/pkg/handler"
	"github.com/eventify-app/eventify/pkg/validator"
)

// bindValues reads {"values": {...}} or a submitted form into *validator.Values.
func bindValues(r *http.Request, v any) error {
	dst, ok := v.(*validator.Values)
	if !ok {
		return fmt.Errorf("bindValues: unsupported target %T", v)
	}
	values, err := binder.Values(r)
	if err != nil {
		return err
	}
	*dst = values
	return nil
}

func (a *API) listForms(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(a.forms.Names())
}

// validateForm answers 200 with the validation result whether or not the
// values pass; only an unknown form is an error.
func (a *API) validateForm(ctx handler.Context, values validator.Values) handler.Response {
	name := chi.URLParam(ctx.Request(), "form")

	res, err := a.forms.Validate(name, values)
	if errors.Is(err, forms.ErrUnknownForm) {
		return handler.JSONError(handler.ErrNotFound.WithMessage(fmt.Sprintf("Unknown form %q", name)))
	}
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(res)
}
