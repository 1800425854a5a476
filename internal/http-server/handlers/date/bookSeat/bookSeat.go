package bookSeat

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
)

type BookingRequest struct {
	DateLabel      string `json:"date_label" validate:"required"`
	EventDateID    string `json:"event_date_id"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	MarketingOptIn bool   `json:"marketing_opt_in"`
}

type BookingResponse struct {
	response.Response
	RegistrationID  string `json:"registration_id,omitempty"`
	SeatDecremented bool   `json:"seat_decremented"`
}

// SeatBooker records a registration and takes the seat in two separate
// steps; the response reports both outcomes.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatBooker
type SeatBooker interface {
	CreateRegistration(in models.Registration) (models.Registration, error)
	DecrementSeat(eventID, label string) (bool, error)
}

func New(log *slog.Logger, booking SeatBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.date.bookSeat.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req BookingRequest

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

		reg, err := booking.CreateRegistration(models.Registration{
			EventID:        eventID,
			EventDateID:    req.EventDateID,
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			MarketingOptIn: req.MarketingOptIn,
		})
		if err != nil {
			log.Error("failed to create registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create registration"))
			return
		}

		decremented, err := booking.DecrementSeat(eventID, req.DateLabel)
		if err != nil {
			log.Error("failed to decrement seat", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, BookingResponse{
				Response:       response.Error("registration recorded but seat update failed"),
				RegistrationID: reg.ID,
			})
			return
		}

		if !decremented {
			log.Info("no seat available for label", slog.String("label", req.DateLabel))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, BookingResponse{
				Response:       response.Error("no available seats for this date"),
				RegistrationID: reg.ID,
			})
			return
		}

		log.Info("seat booked", slog.String("registration_id", reg.ID))

		render.JSON(w, r, BookingResponse{
			Response:        response.OK(),
			RegistrationID:  reg.ID,
			SeatDecremented: true,
		})
	}
}
