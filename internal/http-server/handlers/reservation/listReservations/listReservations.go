package listReservations

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"courtbooker/internal/http-server/middleware/mwauth"
	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Count        int                  `json:"count"`
	Reservations []models.Reservation `json:"reservations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationLister
type ReservationLister interface {
	ListReservations(ctx context.Context, filter storage.ReservationFilter) ([]models.Reservation, error)
}

// New lists the caller's reservations. Admins see everyone's.
func New(log *slog.Logger, reservations ReservationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.listReservations.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in first"))
			return
		}

		filter := storage.ReservationFilter{}
		if !user.IsAdmin() {
			filter.UserID = user.ID
		}

		if status := r.URL.Query().Get("status"); status != "" {
			if status != models.StatusConfirmed && status != models.StatusCancelled {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("status must be confirmed or cancelled"))
				return
			}
			filter.Status = status
		}

		if upcoming := r.URL.Query().Get("upcoming"); upcoming != "" {
			v, err := strconv.ParseBool(upcoming)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("upcoming must be true or false"))
				return
			}
			filter.Upcoming = v
		}

		list, err := reservations.ListReservations(r.Context(), filter)
		if err != nil {
			log.Error("failed to list reservations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list reservations"))
			return
		}

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Count:        len(list),
			Reservations: list,
		})
	}
}
