package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"pgBooker/internal/lib/api/response"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/models"
	"pgBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SignupRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
	Role      string `json:"role" validate:"required,oneof=student owner"`
}

type SignupResponse struct {
	response.Response
	UserID int64 `json:"user_id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegistrar
type UserRegistrar interface {
	Signup(ctx context.Context, username, email, password string, role models.Role) (int64, error)
}

func New(log *slog.Logger, registrar UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signup.New"

		log = log.With(slog.String("op", op))

		var req SignupRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		// only the non-secret fields; the password must never be logged
		log.Info("signup requested", slog.String("email", req.Email), slog.String("role", req.Role))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		userID, err := registrar.Signup(r.Context(), req.Username, req.Email, req.Password, models.Role(req.Role))
		if err != nil {
			if errors.Is(err, storage.ErrEmailTaken) {
				log.Info("email already registered", slog.String("email", req.Email))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(fmt.Sprintf("the email %q is already in use", req.Email)))
				return
			}

			log.Error("failed to sign up user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("something went wrong"))
			return
		}

		log.Info("user registered", slog.Int64("user_id", userID))

		render.JSON(w, r, SignupResponse{
			Response: response.Success("you are now registered and can log in"),
			UserID:   userID,
		})
	}
}
