package getActivePromotions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type ActivePromotionsResponse struct {
	response.Response
	Promotions []models.Promotion `json:"promotions"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ActivePromotionsProvider
type ActivePromotionsProvider interface {
	ActivePromotions(target string) ([]models.Promotion, error)
}

func New(log *slog.Logger, promos ActivePromotionsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.promotion.getActivePromotions.New"

		log = log.With(slog.String("op", op))

		target := r.URL.Query().Get("target")

		active, err := promos.ActivePromotions(target)
		if err != nil {
			log.Error("failed to get promotions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get promotions"))
			return
		}

		log.Info("active promotions listed",
			slog.String("target", target),
			slog.Int("count", len(active)),
		)

		render.JSON(w, r, ActivePromotionsResponse{
			Response:   response.OK(),
			Promotions: active,
		})
	}
}
