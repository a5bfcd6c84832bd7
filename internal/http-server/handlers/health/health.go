package health

import (
	"net/http"
	"time"

	"courtbooker/internal/lib/api/response"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Time          string  `json:"time"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// New reports liveness and uptime since process start.
func New(start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{
			Response:      response.OK(),
			Time:          time.Now().Format(time.RFC3339),
			UptimeSeconds: time.Since(start).Seconds(),
		})
	}
}
