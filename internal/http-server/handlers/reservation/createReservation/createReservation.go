package createReservation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"courtbooker/internal/booking"
	"courtbooker/internal/http-server/middleware/mwauth"
	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	CourtID   int64  `json:"court_id" validate:"required,gte=1"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	Duration  int    `json:"duration" validate:"required,gte=30,lte=240"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type Summary struct {
	ID               int64     `json:"id"`
	CourtID          int64     `json:"court_id"`
	CourtName        string    `json:"court_name"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	ConfirmationCode string    `json:"confirmation_code"`
	Status           string    `json:"status"`
}

type Response struct {
	response.Response
	Reservation Summary `json:"reservation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationCreator
type ReservationCreator interface {
	Create(ctx context.Context, user *models.User, req booking.CreateRequest) (*models.Reservation, error)
}

func New(log *slog.Logger, bookings ReservationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.createReservation.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("please log in first"))
			return
		}

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

		reservation, err := bookings.Create(r.Context(), user, booking.CreateRequest{
			CourtID:   req.CourtID,
			Date:      req.Date,
			StartTime: req.StartTime,
			Duration:  req.Duration,
			Notes:     req.Notes,
		})
		if err != nil {
			var ruleErr *booking.RuleViolation
			var conflictErr *booking.ConflictError

			switch {
			case errors.As(err, &ruleErr):
				log.Info("booking rejected", slog.String("reason", ruleErr.Message))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(ruleErr.Message))
			case errors.As(err, &conflictErr):
				log.Info("booking conflict", slog.Int64("court_id", req.CourtID))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(conflictErr.Error()))
			case errors.Is(err, storage.ErrCourtNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("court not found or inactive"))
			default:
				log.Error("failed to create reservation", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create reservation"))
			}
			return
		}

		log.Info("reservation created",
			slog.Int64("id", reservation.ID),
			slog.String("confirmation_code", reservation.ConfirmationCode),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Reservation: Summary{
				ID:               reservation.ID,
				CourtID:          reservation.CourtID,
				CourtName:        reservation.CourtName,
				StartTime:        reservation.StartTime,
				EndTime:          reservation.EndTime,
				DurationMinutes:  reservation.DurationMinutes,
				ConfirmationCode: reservation.ConfirmationCode,
				Status:           reservation.Status,
			},
		})
	}
}
