package cancelReservation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"courtbooker/internal/booking"
	"courtbooker/internal/http-server/middleware/mwauth"
	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Request body is optional; an empty body means no reason given.
type Request struct {
	Reason string `json:"reason,omitempty"`
}

type Response struct {
	response.Response
	Reservation *models.Reservation `json:"reservation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationCanceller
type ReservationCanceller interface {
	Cancel(ctx context.Context, user *models.User, reservationID int64, reason string) (*models.Reservation, error)
}

func New(log *slog.Logger, bookings ReservationCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.cancelReservation.New"

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

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		reservation, err := bookings.Cancel(r.Context(), user, reservationID, req.Reason)
		if err != nil {
			var ruleErr *booking.RuleViolation

			switch {
			case errors.Is(err, storage.ErrReservationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("reservation not found"))
			case errors.Is(err, booking.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you can only cancel your own reservations"))
			case errors.Is(err, booking.ErrAlreadyCancelled):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("reservation is already cancelled"))
			case errors.As(err, &ruleErr):
				log.Info("cancellation rejected", slog.String("reason", ruleErr.Message))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(ruleErr.Message))
			default:
				log.Error("failed to cancel reservation", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel reservation"))
			}
			return
		}

		log.Info("reservation cancelled", slog.Int64("id", reservationID))

		render.JSON(w, r, Response{
			Response:    response.OK(),
			Reservation: reservation,
		})
	}
}
