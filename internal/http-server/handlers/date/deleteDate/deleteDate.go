package deleteDate

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
)

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DateDeleter
type DateDeleter interface {
	DeleteDate(id string) (bool, error)
}

func New(log *slog.Logger, dates DateDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.date.deleteDate.New"

		log = log.With(slog.String("op", op))

		dateID := chi.URLParam(r, "id")
		if dateID == "" {
			log.Error("date id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("date id is required"))
			return
		}

		log = log.With(slog.String("date_id", dateID))

		removed, err := dates.DeleteDate(dateID)
		if err != nil {
			log.Error("failed to delete date", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete date"))
			return
		}

		if !removed {
			log.Info("date not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("date not found"))
			return
		}

		log.Info("date deleted")

		render.JSON(w, r, DeleteResponse{Response: response.OK()})
	}
}
