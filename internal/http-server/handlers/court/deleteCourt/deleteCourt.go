package deleteCourt

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

type Response struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CourtDeleter
type CourtDeleter interface {
	DeleteCourt(ctx context.Context, id int64) error
}

func New(log *slog.Logger, courts CourtDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.court.deleteCourt.New"

		log := log.With(slog.String("op", op))

		courtID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid court id format"))
			return
		}

		if err = courts.DeleteCourt(r.Context(), courtID); err != nil {
			if errors.Is(err, storage.ErrCourtNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("court not found"))
				return
			}
			log.Error("failed to delete court", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete court"))
			return
		}

		log.Info("court deleted", slog.Int64("id", courtID))

		render.JSON(w, r, Response{Response: response.OK()})
	}
}
