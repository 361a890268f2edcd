package eventapi

import "context"

func input(v any) map[string]any { return map[string]any{"input": v} }

func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (UserResult, error) {
	var out struct {
		CreateUser UserResult `json:"createUser"`
	}
	err := c.Do(ctx, createUserMutation, input(in), &out)
	return out.CreateUser, err
}

func (c *Client) VerifyEmail(ctx context.Context, in VerifyEmailInput) (Result, error) {
	var out struct {
		VerifyEmail Result `json:"verifyEmail"`
	}
	err := c.Do(ctx, verifyEmailMutation, input(in), &out)
	return out.VerifyEmail, err
}

func (c *Client) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	var out struct {
		Login LoginResult `json:"login"`
	}
	err := c.Do(ctx, loginMutation, input(in), &out)
	return out.Login, err
}

// Logout invalidates the token carried by ctx.
func (c *Client) Logout(ctx context.Context) (Result, error) {
	var out struct {
		Logout Result `json:"logout"`
	}
	err := c.Do(ctx, logoutMutation, nil, &out)
	return out.Logout, err
}

func (c *Client) ChangePassword(ctx context.Context, in ChangePasswordInput) (Result, error) {
	var out struct {
		ChangePassword Result `json:"changePassword"`
	}
	err := c.Do(ctx, changePasswordMutation, input(in), &out)
	return out.ChangePassword, err
}

func (c *Client) ForgotPassword(ctx context.Context, in ForgotPasswordInput) (Result, error) {
	var out struct {
		ForgotPassword Result `json:"forgotPassword"`
	}
	err := c.Do(ctx, forgotPasswordMutation, input(in), &out)
	return out.ForgotPassword, err
}

func (c *Client) ResetPassword(ctx context.Context, in ResetPasswordInput) (Result, error) {
	var out struct {
		ResetPassword Result `json:"resetPassword"`
	}
	err := c.Do(ctx, resetPasswordMutation, input(in), &out)
	return out.ResetPassword, err
}

// CurrentUser returns the owner of the token in ctx, or nil when the API
// reports no user.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var out struct {
		CurrentUser *User `json:"currentUser"`
	}
	err := c.Do(ctx, currentUserQuery, nil, &out)
	return out.CurrentUser, err
}

func (c *Client) MyEvents(ctx context.Context) ([]Event, error) {
	var out struct {
		MyEvents []Event `json:"myEvents"`
	}
	err := c.Do(ctx, myEventsQuery, nil, &out)
	return out.MyEvents, err
}

func (c *Client) InvitedEvents(ctx context.Context) ([]Event, error) {
	var out struct {
		InvitedEvents []Event `json:"invitedEvents"`
	}
	err := c.Do(ctx, invitedEventsQuery, nil, &out)
	return out.InvitedEvents, err
}

// Event returns nil without error when the event does not exist.
func (c *Client) Event(ctx context.Context, id string) (*Event, error) {
	var out struct {
		Event *Event `json:"event"`
	}
	err := c.Do(ctx, eventQuery, map[string]any{"id": id}, &out)
	return out.Event, err
}

func (c *Client) CreateEvent(ctx context.Context, in EventInput) (EventResult, error) {
	var out struct {
		CreateEvent EventResult `json:"createEvent"`
	}
	err := c.Do(ctx, createEventMutation, input(in), &out)
	return out.CreateEvent, err
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in EventInput) (EventResult, error) {
	var out struct {
		UpdateEvent EventResult `json:"updateEvent"`
	}
	err := c.Do(ctx, updateEventMutation, map[string]any{"id": id, "input": in}, &out)
	return out.UpdateEvent, err
}

func (c *Client) DeleteEvent(ctx context.Context, id string) (Result, error) {
	var out struct {
		DeleteEvent Result `json:"deleteEvent"`
	}
	err := c.Do(ctx, deleteEventMutation, map[string]any{"id": id}, &out)
	return out.DeleteEvent, err
}

func (c *Client) InviteParticipants(ctx context.Context, in InviteParticipantsInput) (EventResult, error) {
	var out struct {
		InviteParticipants EventResult `json:"inviteParticipants"`
	}
	err := c.Do(ctx, inviteParticipantsMutation, input(in), &out)
	return out.InviteParticipants, err
}
