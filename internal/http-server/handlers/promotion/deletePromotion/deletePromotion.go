package deletePromotion

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PromotionDeleter
type PromotionDeleter interface {
	DeletePromotion(id string) (bool, error)
}

func New(log *slog.Logger, promos PromotionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.promotion.deletePromotion.New"

		log = log.With(slog.String("op", op))

		promoID := chi.URLParam(r, "id")
		if promoID == "" {
			log.Error("promotion id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("promotion id is required"))
			return
		}

		log = log.With(slog.String("promotion_id", promoID))

		removed, err := promos.DeletePromotion(promoID)
		if err != nil {
			log.Error("failed to delete promotion", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete promotion"))
			return
		}

		if !removed {
			log.Info("promotion not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("promotion not found"))
			return
		}

		log.Info("promotion deleted")

		render.JSON(w, r, DeleteResponse{Response: response.OK()})
	}
}
