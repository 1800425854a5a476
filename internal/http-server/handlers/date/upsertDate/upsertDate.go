package upsertDate

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
	"eventAdmin/internal/normalize"
)

type DateRequest struct {
	ID             string `json:"id"`
	Label          string `json:"label" validate:"required"`
	SeatsTotal     int    `json:"seats_total" validate:"min=0"`
	SeatsAvailable *int   `json:"seats_available"`
}

type DateResponse struct {
	response.Response
	Date *models.EventDate `json:"date"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DateUpserter
type DateUpserter interface {
	UpsertDate(in normalize.EventDateInput) (*models.EventDate, error)
}

func New(log *slog.Logger, dates DateUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.date.upsertDate.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req DateRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		row, err := dates.UpsertDate(normalize.EventDateInput{
			ID:             req.ID,
			EventID:        eventID,
			Label:          req.Label,
			SeatsTotal:     req.SeatsTotal,
			SeatsAvailable: req.SeatsAvailable,
		})
		if err != nil {
			log.Error("failed to upsert date", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save date"))
			return
		}

		if row == nil {
			log.Error("date was rejected")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log.Info("date saved", slog.String("id", row.ID))

		render.JSON(w, r, DateResponse{
			Response: response.OK(),
			Date:     row,
		})
	}
}
