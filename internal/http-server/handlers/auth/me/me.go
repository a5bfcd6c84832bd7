package me

import (
	"net/http"

	"courtbooker/internal/http-server/middleware/mwauth"
	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	User *models.User `json:"user"`
}

// New returns the authenticated user's profile. The auth middleware has
// already loaded the user.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in first"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     user,
		})
	}
}
