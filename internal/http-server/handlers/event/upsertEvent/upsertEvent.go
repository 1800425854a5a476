package upsertEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type DateEntry struct {
	Label string `json:"label"`
	Seats int    `json:"seats"`
}

type EventRequest struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	MonthKey      string      `json:"monthKey"`
	Title         string      `json:"title" validate:"required"`
	Description   string      `json:"description"`
	Image         string      `json:"img"`
	Location      string      `json:"location"`
	TimeRange     string      `json:"timeRange"`
	DurationHours string      `json:"durationHours"`
	Dates         []DateEntry `json:"dates"`
}

type EventResponse struct {
	response.Response
	Event           models.Event `json:"event"`
	DefaultedFields []string     `json:"defaulted_fields,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpserter
type EventUpserter interface {
	UpsertEvent(in models.Event) (models.Event, []string, error)
}

func New(log *slog.Logger, events EventUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.upsertEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

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

		in := models.Event{
			ID:            req.ID,
			Type:          req.Type,
			MonthKey:      req.MonthKey,
			Title:         req.Title,
			Description:   req.Description,
			Image:         req.Image,
			Location:      req.Location,
			TimeRange:     req.TimeRange,
			DurationHours: req.DurationHours,
		}
		for _, d := range req.Dates {
			in.Dates = append(in.Dates, models.LegacyDate{Label: d.Label, Seats: d.Seats})
		}

		ev, defaulted, err := events.UpsertEvent(in)
		if err != nil {
			log.Error("failed to upsert event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save event"))

			return
		}

		log.Info("event saved", slog.String("id", ev.ID))

		responseOK(w, r, ev, defaulted)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ev models.Event, defaulted []string) {
	render.JSON(w, r, EventResponse{
		Response:        response.OK(),
		Event:           ev,
		DefaultedFields: defaulted,
	})
}
