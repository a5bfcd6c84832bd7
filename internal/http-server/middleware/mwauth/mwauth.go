package mwauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/jwt"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/render"
)

type contextKey string

const userKey contextKey = "auth_user"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

// New requires a valid bearer token and reloads the user on every request,
// so deactivated or deleted accounts lose access immediately.
func New(log *slog.Logger, secret string, users UserProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.mwauth.New"

			log := log.With(slog.String("op", op))

			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, r, "no token provided, please log in")
				return
			}

			claims, err := jwt.Parse(secret, token)
			if err != nil {
				log.Info("invalid token", sl.Err(err))
				unauthorized(w, r, "invalid or expired token")
				return
			}

			user, err := users.UserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					unauthorized(w, r, "user no longer exists")
					return
				}
				log.Error("failed to load user", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			if !user.IsActive {
				unauthorized(w, r, "your account has been deactivated")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireAdmin must be mounted after New.
func RequireAdmin(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			unauthorized(w, r, "please log in first")
			return
		}

		if !user.IsAdmin() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("this action requires administrator privileges"))
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// ContextWithUser is exported for handler tests.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}
