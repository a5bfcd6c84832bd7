package getReservation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"courtbooker/internal/http-server/middleware/mwauth"
	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Reservation *models.Reservation `json:"reservation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationGetter
type ReservationGetter interface {
	ReservationByID(ctx context.Context, id int64) (*models.Reservation, error)
}

func New(log *slog.Logger, reservations ReservationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.getReservation.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in first"))
			return
		}

		reservationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid reservation id format"))
			return
		}

		reservation, err := reservations.ReservationByID(r.Context(), reservationID)
		if err != nil {
			if errors.Is(err, storage.ErrReservationNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("reservation not found"))
				return
			}
			log.Error("failed to get reservation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get reservation"))
			return
		}

		if reservation.UserID != user.ID && !user.IsAdmin() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you can only view your own reservations"))
			return
		}

		render.JSON(w, r, Response{
			Response:    response.OK(),
			Reservation: reservation,
		})
	}
}
