package getRegistrations

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type RegistrationsResponse struct {
	response.Response
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsProvider
type RegistrationsProvider interface {
	Registrations() ([]models.Registration, error)
	RegistrationsByEvent(eventID string) ([]models.Registration, error)
}

func New(log *slog.Logger, regs RegistrationsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.getRegistrations.New"

		log = log.With(slog.String("op", op))

		var (
			list []models.Registration
			err  error
		)

		if eventID := r.URL.Query().Get("event"); eventID != "" {
			list, err = regs.RegistrationsByEvent(eventID)
		} else {
			list, err = regs.Registrations()
		}
		if err != nil {
			log.Error("failed to get registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get registrations"))
			return
		}

		log.Info("registrations listed", slog.Int("count", len(list)))

		render.JSON(w, r, RegistrationsResponse{
			Response:      response.OK(),
			Registrations: list,
		})
	}
}
