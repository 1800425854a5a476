package getMedia

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type MediaResponse struct {
	response.Response
	Media models.MediaConfig `json:"media"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MediaProvider
type MediaProvider interface {
	MediaConfig() (models.MediaConfig, error)
}

func New(log *slog.Logger, media MediaProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.media.getMedia.New"

		log = log.With(slog.String("op", op))

		cfg, err := media.MediaConfig()
		if err != nil {
			log.Error("failed to get media config", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get media config"))
			return
		}

		render.JSON(w, r, MediaResponse{
			Response: response.OK(),
			Media:    cfg,
		})
	}
}
