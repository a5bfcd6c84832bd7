package saveCourt

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name        string `json:"name" validate:"required,min=2"`
	FacilityID  int64  `json:"facility_id" validate:"required,gte=1"`
	CourtNumber int    `json:"court_number,omitempty" validate:"omitempty,gte=1"`
	SurfaceType string `json:"surface_type,omitempty" validate:"omitempty,min=2"`
	IsIndoor    bool   `json:"is_indoor,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type Response struct {
	response.Response
	Court *models.Court `json:"court"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CourtSaver
type CourtSaver interface {
	SaveCourt(ctx context.Context, court *models.Court) error
}

func New(log *slog.Logger, courts CourtSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.court.saveCourt.New"

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

		surface := req.SurfaceType
		if surface == "" {
			surface = "hard court"
		}

		court := &models.Court{
			FacilityID:  req.FacilityID,
			Name:        req.Name,
			CourtNumber: req.CourtNumber,
			SurfaceType: surface,
			IsIndoor:    req.IsIndoor,
			Notes:       req.Notes,
		}

		if err = courts.SaveCourt(r.Context(), court); err != nil {
			log.Error("failed to create court", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create court"))
			return
		}

		log.Info("court created", slog.Int64("id", court.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Court:    court,
		})
	}
}
