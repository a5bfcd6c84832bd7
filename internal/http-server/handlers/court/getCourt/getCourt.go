package getCourt

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Court *models.Court `json:"court"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CourtGetter
type CourtGetter interface {
	CourtByID(ctx context.Context, id int64) (*models.Court, error)
}

func New(log *slog.Logger, courts CourtGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.court.getCourt.New"

		log := log.With(slog.String("op", op))

		courtID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid court id format"))
			return
		}

		court, err := courts.CourtByID(r.Context(), courtID)
		if err != nil {
			if errors.Is(err, storage.ErrCourtNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("court not found"))
				return
			}
			log.Error("failed to get court", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get court"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Court:    court,
		})
	}
}
