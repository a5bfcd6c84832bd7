package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtbooker/internal/booking"
	"courtbooker/internal/config"
	"courtbooker/internal/http-server/handlers/auth/login"
	"courtbooker/internal/http-server/handlers/auth/me"
	"courtbooker/internal/http-server/handlers/auth/register"
	"courtbooker/internal/http-server/handlers/court/deleteCourt"
	"courtbooker/internal/http-server/handlers/court/getCourt"
	"courtbooker/internal/http-server/handlers/court/getSchedule"
	"courtbooker/internal/http-server/handlers/court/listCourts"
	"courtbooker/internal/http-server/handlers/court/saveCourt"
	"courtbooker/internal/http-server/handlers/court/updateCourt"
	"courtbooker/internal/http-server/handlers/email/sendTest"
	"courtbooker/internal/http-server/handlers/health"
	"courtbooker/internal/http-server/handlers/reservation/cancelReservation"
	"courtbooker/internal/http-server/handlers/reservation/createReservation"
	"courtbooker/internal/http-server/handlers/reservation/getReservation"
	"courtbooker/internal/http-server/handlers/reservation/listReservations"
	"courtbooker/internal/http-server/middleware/mwauth"
	"courtbooker/internal/http-server/middleware/mwlimit"
	"courtbooker/internal/http-server/middleware/mwlogger"
	"courtbooker/internal/lib/logger/handlers/slogpretty"
	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/metrics"
	"courtbooker/internal/notifier"
	"courtbooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting court booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	metrics.Register()

	mailer := notifier.New(cfg.SMTP, log)
	bookings := booking.NewService(storage, mailer, log,
		cfg.Booking.MaxActiveReservations, cfg.Booking.MinCancellationHours)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Get("/health", health.New(time.Now()))
	router.Handle("/metrics", promhttp.Handler())

	authRequired := mwauth.New(log, cfg.Auth.Secret, storage)

	router.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mwlimit.New(cfg.RateLimit))
			r.Post("/register", register.New(log, cfg.Auth.Secret, cfg.Auth.TokenTTL, storage))
			r.Post("/login", login.New(log, cfg.Auth.Secret, cfg.Auth.TokenTTL, storage))
		})
		r.Group(func(r chi.Router) {
			r.Use(authRequired)
			r.Get("/me", me.New())
		})
	})

	router.Route("/api/courts", func(r chi.Router) {
		r.Get("/", listCourts.New(log, storage))
		r.Get("/{id}", getCourt.New(log, storage))
		r.Get("/{id}/schedule", getSchedule.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(authRequired, mwauth.RequireAdmin)
			r.Post("/", saveCourt.New(log, storage))
			r.Put("/{id}", updateCourt.New(log, storage))
			r.Delete("/{id}", deleteCourt.New(log, storage))
		})
	})

	router.Route("/api/reservations", func(r chi.Router) {
		r.Use(authRequired)
		r.Post("/", createReservation.New(log, bookings))
		r.Get("/", listReservations.New(log, storage))
		r.Get("/{id}", getReservation.New(log, storage))
		r.Delete("/{id}", cancelReservation.New(log, bookings))
	})

	router.Route("/api/email", func(r chi.Router) {
		r.Use(authRequired, mwauth.RequireAdmin)
		r.Post("/test", sendTest.New(log, mailer))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
