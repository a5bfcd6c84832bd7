package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/jwt"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

func New(log *slog.Logger, secret string, tokenTTL time.Duration, users UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		user, err := users.UserByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				// Same message as a bad password: no account enumeration.
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid email or password"))
				return
			}
			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if !user.IsActive {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("your account has been deactivated"))
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
			return
		}

		token, err := jwt.NewToken(secret, user.ID, user.Email, user.Role, tokenTTL)
		if err != nil {
			log.Error("failed to generate token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("user logged in", slog.Int64("id", user.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Token:    token,
			User:     user,
		})
	}
}
