package api

import (
	"github.com/eventify-app/eventify/pkg/handler"
	"github.com/eventify-app/eventify/pkg/validator"
)

type PasswordRequest struct {
	Password string `json:"password"`
}

func (a *API) passwordStrength(_ handler.Context, req PasswordRequest) handler.Response {
	return handler.JSON(validator.CheckPasswordStrength(req.Password))
}

type passwordSignals struct {
	Password string `json:"password"`
}

// passwordStrengthStream reads the password signal and patches the strength,
// label, color and checks signals of the meter.
func (a *API) passwordStrengthStream(ctx handler.Context, _ struct{}) handler.Response {
	signals, err := handler.ReadSignals[passwordSignals](ctx.Request())
	if err != nil {
		return handler.JSONError(err)
	}

	return handler.Stream(func(stream handler.SignalStream) error {
		return stream.Send(validator.CheckPasswordStrength(signals.Password))
	})
}
