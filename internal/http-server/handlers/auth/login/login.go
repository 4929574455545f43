package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/service/auth"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	Token string `json:"token,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserAuthenticator
type UserAuthenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

func New(log *slog.Logger, authenticator UserAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("login requested", slog.String("email", req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		token, err := authenticator.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Info("login rejected", slog.String("email", req.Email))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid email or password"))
				return
			}

			log.Error("failed to log in user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("something went wrong"))
			return
		}

		log.Info("user logged in", slog.String("email", req.Email))

		render.JSON(w, r, LoginResponse{
			Response: response.OK(),
			Token:    token,
		})
	}
}
