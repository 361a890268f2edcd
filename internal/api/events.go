package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/forms"
	"github.com/eventify-app/eventify/pkg/handler"
	"github.com/eventify-app/eventify/pkg/validator"
)

type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

func (r EventRequest) Values() validator.Values {
	return validator.Values{
		"title":       r.Title,
		"description": r.Description,
		"date":        r.Date,
		"location":    r.Location,
	}
}

// Input converts the request for the API, normalizing the date to RFC 3339
// in UTC. The date must have passed validation.
func (r EventRequest) Input() eventapi.EventInput {
	in := eventapi.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
	}
	if t, err := validator.ParseDate(r.Date); err == nil {
		in.Date = t.UTC().Format(time.RFC3339)
	}
	return in
}

// InviteRequest carries addresses separated by commas, semicolons or whitespace.
type InviteRequest struct {
	Emails string `json:"emails"`
}

func (r InviteRequest) Values() validator.Values {
	return validator.Values{"emails": r.Emails}
}

type eventList struct {
	Mine    []eventapi.Event `json:"mine"`
	Invited []eventapi.Event `json:"invited"`
}

func (a *API) listEvents(ctx handler.Context, _ struct{}) handler.Response {
	mine, err := a.client.MyEvents(ctx)
	if err != nil {
		return a.remoteError(ctx, err)
	}
	invited, err := a.client.InvitedEvents(ctx)
	if err != nil {
		return a.remoteError(ctx, err)
	}

	list := eventList{Mine: mine, Invited: invited}
	if list.Mine == nil {
		list.Mine = []eventapi.Event{}
	}
	if list.Invited == nil {
		list.Invited = []eventapi.Event{}
	}
	return handler.JSON(list)
}

func (a *API) createEvent(ctx handler.Context, req EventRequest) handler.Response {
	if resp := a.validate(ctx, forms.Event, req.Values()); resp != nil {
		return resp
	}

	res, err := a.client.CreateEvent(ctx, req.Input())
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res.Result, http.StatusCreated, res)
}

func (a *API) getEvent(ctx handler.Context, _ struct{}) handler.Response {
	event, err := a.client.Event(ctx, chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return a.remoteError(ctx, err)
	}
	if event == nil {
		return handler.JSONError(handler.ErrNotFound.WithMessage("Event not found"))
	}
	return handler.JSON(event)
}

func (a *API) updateEvent(ctx handler.Context, req EventRequest) handler.Response {
	if resp := a.validate(ctx, forms.Event, req.Values()); resp != nil {
		return resp
	}

	res, err := a.client.UpdateEvent(ctx, chi.URLParam(ctx.Request(), "id"), req.Input())
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res.Result, http.StatusOK, res)
}

func (a *API) deleteEvent(ctx handler.Context, _ struct{}) handler.Response {
	res, err := a.client.DeleteEvent(ctx, chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res, http.StatusOK, res)
}

func (a *API) inviteParticipants(ctx handler.Context, req InviteRequest) handler.Response {
	if resp := a.validate(ctx, forms.Invite, req.Values()); resp != nil {
		return resp
	}

	res, err := a.client.InviteParticipants(ctx, eventapi.InviteParticipantsInput{
		EventID: chi.URLParam(ctx.Request(), "id"),
		Emails:  forms.SplitEmails(req.Emails),
	})
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res.Result, http.StatusOK, res)
}
