package listCourts

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Count  int            `json:"count"`
	Courts []models.Court `json:"courts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CourtLister
type CourtLister interface {
	ListCourts(ctx context.Context, facilityID int64, isActive *bool) ([]models.Court, error)
}

func New(log *slog.Logger, courts CourtLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.court.listCourts.New"

		log := log.With(slog.String("op", op))

		var facilityID int64
		if v := r.URL.Query().Get("facility_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid facility_id"))
				return
			}
			facilityID = id
		}

		var isActive *bool
		if v := r.URL.Query().Get("is_active"); v != "" {
			active := v == "true"
			isActive = &active
		}

		list, err := courts.ListCourts(r.Context(), facilityID, isActive)
		if err != nil {
			log.Error("failed to list courts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list courts"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Count:    len(list),
			Courts:   list,
		})
	}
}
