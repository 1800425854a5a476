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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eventAdmin/internal/clock"
	"eventAdmin/internal/config"
	"eventAdmin/internal/data"
	"eventAdmin/internal/http-server/handlers/auth/login"
	"eventAdmin/internal/http-server/handlers/date/bookSeat"
	"eventAdmin/internal/http-server/handlers/date/deleteDate"
	"eventAdmin/internal/http-server/handlers/date/upsertDate"
	"eventAdmin/internal/http-server/handlers/event/deleteEvent"
	"eventAdmin/internal/http-server/handlers/event/getAllEvents"
	"eventAdmin/internal/http-server/handlers/event/getEvent"
	"eventAdmin/internal/http-server/handlers/event/upsertEvent"
	"eventAdmin/internal/http-server/handlers/media/getMedia"
	"eventAdmin/internal/http-server/handlers/media/updateMedia"
	"eventAdmin/internal/http-server/handlers/promotion/deletePromotion"
	"eventAdmin/internal/http-server/handlers/promotion/getActivePromotions"
	"eventAdmin/internal/http-server/handlers/promotion/upsertPromotion"
	"eventAdmin/internal/http-server/handlers/registration/getRegistrations"
	"eventAdmin/internal/http-server/middleware/mwauth"
	"eventAdmin/internal/http-server/middleware/mwlogger"
	"eventAdmin/internal/lib/logger/handlers/slogpretty"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/storage"
	"eventAdmin/internal/storage/file"
	"eventAdmin/internal/storage/memory"
	"eventAdmin/internal/storage/postgres"
	"eventAdmin/internal/storage/sqlite"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event admin", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store, closeStore, err := setupStorage(&cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	svc := data.New(log, store, clock.NewSystem())

	if err = svc.Bootstrap(); err != nil {
		log.Error("failed to bootstrap data", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/events", getAllEvents.New(log, svc))
	router.Get("/events/{id}", getEvent.New(log, svc))
	router.Post("/events/{id}/book", bookSeat.New(log, svc))
	router.Get("/promotions/active", getActivePromotions.New(log, svc))
	router.Get("/media", getMedia.New(log, svc))

	router.Post("/admin/login", login.New(log, cfg.Admin, svc))

	router.Route("/admin", func(r chi.Router) {
		r.Use(mwauth.New(log, cfg.Admin.JWTSecret))

		r.Post("/events", upsertEvent.New(log, svc))
		r.Delete("/events/{id}", deleteEvent.New(log, svc))
		r.Post("/events/{id}/dates", upsertDate.New(log, svc))
		r.Delete("/dates/{id}", deleteDate.New(log, svc))
		r.Get("/registrations", getRegistrations.New(log, svc))
		r.Post("/promotions", upsertPromotion.New(log, svc))
		r.Delete("/promotions/{id}", deletePromotion.New(log, svc))
		r.Put("/media", updateMedia.New(log, svc))
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if closeStore != nil {
		if err = closeStore(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}

	log.Info("application stopped")
}

func setupStorage(cfg *config.Storage) (storage.Store, func() error, error) {
	switch cfg.Driver {
	case "file":
		store, err := file.New(cfg.Path)
		return store, nil, err
	case "sqlite":
		store, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case "postgres":
		store, err := postgres.New(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return memory.New(), nil, nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
