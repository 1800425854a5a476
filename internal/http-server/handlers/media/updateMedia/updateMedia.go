package updateMedia

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type MediaRequest struct {
	Logo      string `json:"logo"`
	HeroImg   string `json:"heroImg"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
}

type MediaResponse struct {
	response.Response
	Media models.MediaConfig `json:"media"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MediaUpdater
type MediaUpdater interface {
	UpdateMediaConfig(in models.MediaConfig) (models.MediaConfig, error)
}

func New(log *slog.Logger, media MediaUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.media.updateMedia.New"

		log = log.With(slog.String("op", op))

		var req MediaRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		cfg, err := media.UpdateMediaConfig(models.MediaConfig{
			Logo:      req.Logo,
			HeroImg:   req.HeroImg,
			WhatsApp:  req.WhatsApp,
			Instagram: req.Instagram,
		})
		if err != nil {
			log.Error("failed to update media config", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update media config"))
			return
		}

		log.Info("media config updated")

		render.JSON(w, r, MediaResponse{
			Response: response.OK(),
			Media:    cfg,
		})
	}
}
