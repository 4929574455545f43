package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pgBooker/internal/config"
	"pgBooker/internal/http-server/handlers/auth/login"
	"pgBooker/internal/http-server/handlers/auth/signup"
	"pgBooker/internal/http-server/handlers/booking/cancelBooking"
	"pgBooker/internal/http-server/handlers/booking/confirmBooking"
	"pgBooker/internal/http-server/handlers/booking/createBooking"
	"pgBooker/internal/http-server/handlers/booking/myBookings"
	"pgBooker/internal/http-server/handlers/booking/ownerBookings"
	"pgBooker/internal/http-server/handlers/listing/createListing"
	"pgBooker/internal/http-server/handlers/listing/dashboard"
	"pgBooker/internal/http-server/handlers/listing/editListing"
	"pgBooker/internal/http-server/handlers/listing/getListing"
	"pgBooker/internal/http-server/handlers/listing/searchListings"
	"pgBooker/internal/http-server/handlers/listing/uploadImages"
	"pgBooker/internal/http-server/middleware/mwauth"
	"pgBooker/internal/http-server/middleware/mwlogger"
	"pgBooker/internal/lib/logger/handlers/slogpretty"
	"pgBooker/internal/lib/logger/sl"
	"pgBooker/internal/service/auth"
	"pgBooker/internal/service/booking"
	"pgBooker/internal/storage/filestore"
	"pgBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting pg booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	files, err := filestore.New(cfg.Uploads.Dir)
	if err != nil {
		log.Error("failed to init file store", sl.Err(err))
		os.Exit(1)
	}

	authService := auth.New(storage, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	bookingService := booking.New(storage, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir(cfg.Uploads.Dir))
	router.Handle("/static/uploads/*", http.StripPrefix("/static/uploads/", fs))

	router.Post("/auth/signup", signup.New(log, authService))
	router.Post("/auth/login", login.New(log, authService))
	router.Get("/listings", searchListings.New(log, storage))
	router.Get("/listings/{id}", getListing.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, cfg.Auth.Secret))

		r.Post("/listings", createListing.New(log, storage))
		r.Post("/listings/{id}/edit", editListing.New(log, storage))
		r.Post("/listings/{id}/images", uploadImages.New(log, storage, files))
		r.Post("/listings/{id}/book", createBooking.New(log, bookingService))
		r.Get("/dashboard", dashboard.New(log, storage))
		r.Get("/my-bookings", myBookings.New(log, bookingService))
		r.Get("/owner/bookings", ownerBookings.New(log, bookingService))
		r.Post("/bookings/{id}/cancel", cancelBooking.New(log, bookingService))
		r.Post("/bookings/{id}/confirm", confirmBooking.New(log, bookingService))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
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
