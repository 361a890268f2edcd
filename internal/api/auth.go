package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/forms"
	"github.com/eventify-app/eventify/pkg/handler"
	"github.com/eventify-app/eventify/pkg/logger"
	"github.com/eventify-app/eventify/pkg/validator"
)

type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r RegisterRequest) Values() validator.Values {
	return validator.Values{
		"firstName":       r.FirstName,
		"lastName":        r.LastName,
		"email":           r.Email,
		"password":        r.Password,
		"confirmPassword": r.ConfirmPassword,
	}
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r VerifyEmailRequest) Values() validator.Values {
	return validator.Values{"email": r.Email, "otp": r.OTP}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Values() validator.Values {
	return validator.Values{"email": r.Email, "password": r.Password}
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Values() validator.Values {
	return validator.Values{"email": r.Email}
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r ResetPasswordRequest) Values() validator.Values {
	return validator.Values{
		"email":           r.Email,
		"otp":             r.OTP,
		"newPassword":     r.NewPassword,
		"confirmPassword": r.ConfirmPassword,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r ChangePasswordRequest) Values() validator.Values {
	return validator.Values{
		"currentPassword": r.CurrentPassword,
		"newPassword":     r.NewPassword,
		"confirmPassword": r.ConfirmPassword,
	}
}

func (a *API) register(ctx handler.Context, req RegisterRequest) handler.Response {
	if resp := a.validate(ctx, forms.Register, req.Values()); resp != nil {
		return resp
	}

	res, err := a.client.CreateUser(ctx, eventapi.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res.Result, http.StatusCreated, res)
}

func (a *API) verifyEmail(ctx handler.Context, req VerifyEmailRequest) handler.Response {
	if resp := a.validate(ctx, forms.VerifyEmail, req.Values()); resp != nil {
		return resp
	}

	res, err := a.client.VerifyEmail(ctx, eventapi.VerifyEmailInput{Email: req.Email, OTP: req.OTP})
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res, http.StatusOK, res)
}

// login answers 401 with the user-facing failure message when the
// credentials are rejected, and the signed-in user otherwise.
func (a *API) login(ctx handler.Context, req LoginRequest) handler.Response {
	if resp := a.validate(ctx, forms.Login, req.Values()); resp != nil {
		return resp
	}

	mgr := sessionFrom(ctx)
	res := mgr.Login(ctx, req.Email, req.Password)
	if !res.Success {
		return handler.JSONError(handler.ErrUnauthorized.WithMessage(res.Message))
	}

	// A signed-in session always gets a fresh ID; the one presented before
	// login may have been planted.
	sid := uuid.NewString()
	if err := mgr.Rotate(ctx, sid); err != nil {
		a.log.ErrorContext(ctx, "Failed to rotate session",
			logger.Component("auth"),
			logger.SessionID(sessionIDFrom(ctx)),
			logger.Error(err),
		)
		return handler.JSONError(handler.ErrServiceUnavailable)
	}
	a.setSessionCookie(ctx.ResponseWriter(), ctx.Request(), sid)
	a.log.InfoContext(ctx, "User signed in",
		logger.Component("auth"),
		logger.SessionID(sid),
		logger.UserID(mgr.Session().User.ID),
	)
	return handler.JSON(map[string]any{
		"message": res.Message,
		"user":    mgr.Session().User,
	})
}

// logout always clears the session cookie, even when the store fails.
func (a *API) logout(ctx handler.Context, _ struct{}) handler.Response {
	if err := sessionFrom(ctx).Logout(ctx); err != nil {
		a.log.ErrorContext(ctx, "Failed to clear stored session",
			logger.Component("auth"),
			logger.SessionID(sessionIDFrom(ctx)),
			logger.Error(err),
		)
	}
	clearSessionCookie(ctx.ResponseWriter(), ctx.Request())
	return handler.NoContent()
}

func (a *API) me(ctx handler.Context, _ struct{}) handler.Response {
	return handler.JSON(sessionFrom(ctx).Session().User)
}

func (a *API) forgotPassword(ctx handler.Context, req ForgotPasswordRequest) handler.Response {
	if resp := a.validate(ctx, forms.ForgotPassword, req.Values()); resp != nil {
		return resp
	}

	res, err := a.client.ForgotPassword(ctx, eventapi.ForgotPasswordInput{Email: req.Email})
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res, http.StatusOK, res)
}

func (a *API) resetPassword(ctx handler.Context, req ResetPasswordRequest) handler.Response {
	if resp := a.validate(ctx, forms.ResetPassword, req.Values()); resp != nil {
		return resp
	}

	res, err := a.client.ResetPassword(ctx, eventapi.ResetPasswordInput{
		Email:       req.Email,
		OTP:         req.OTP,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res, http.StatusOK, res)
}

func (a *API) changePassword(ctx handler.Context, req ChangePasswordRequest) handler.Response {
	if resp := a.validate(ctx, forms.ChangePassword, req.Values()); resp != nil {
		return resp
	}

	res, err := a.client.ChangePassword(ctx, eventapi.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return a.remoteError(ctx, err)
	}
	return mutation(res, http.StatusOK, res)
}
