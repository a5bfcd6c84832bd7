package updateCourt

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// All fields are optional; only the ones present are applied.
type Request struct {
	Name        *string `json:"name,omitempty"`
	SurfaceType *string `json:"surface_type,omitempty"`
	IsIndoor    *bool   `json:"is_indoor,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type Response struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CourtUpdater
type CourtUpdater interface {
	UpdateCourt(ctx context.Context, id int64, upd storage.CourtUpdate) error
}

func New(log *slog.Logger, courts CourtUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.court.updateCourt.New"

		log := log.With(slog.String("op", op))

		courtID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid court id format"))
			return
		}

		var req Request

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		upd := storage.CourtUpdate{
			Name:        req.Name,
			SurfaceType: req.SurfaceType,
			IsIndoor:    req.IsIndoor,
			IsActive:    req.IsActive,
			Notes:       req.Notes,
		}

		if err = courts.UpdateCourt(r.Context(), courtID, upd); err != nil {
			if errors.Is(err, storage.ErrCourtNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("court not found"))
				return
			}
			log.Error("failed to update court", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update court"))
			return
		}

		log.Info("court updated", slog.Int64("id", courtID))

		render.JSON(w, r, Response{Response: response.OK()})
	}
}
