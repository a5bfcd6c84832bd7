package sendTest

import (
	"errors"
	"log/slog"
	"net/http"

	"courtbooker/internal/lib/api/response"
	"courtbooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Email string `json:"email" validate:"required,email"`
}

type Response struct {
	response.Response
	SentTo string `json:"sent_to"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TestSender
type TestSender interface {
	SendTest(to string) error
}

// New sends a test message so operators can verify SMTP credentials
// without making a booking.
func New(log *slog.Logger, mailer TestSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.email.sendTest.New"

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

		if err = mailer.SendTest(req.Email); err != nil {
			log.Error("failed to send test email", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to send test email"))
			return
		}

		log.Info("test email sent", slog.String("to", req.Email))

		render.JSON(w, r, Response{
			Response: response.OK(),
			SentTo:   req.Email,
		})
	}
}
