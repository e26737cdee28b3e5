package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"countdown/internal/utils"
	"countdown/internal/utils/logger/sl"
)

type ImageHandler struct {
	searcher ImageSearcher
	log      *slog.Logger
}

func NewImageHandler(log *slog.Logger, searcher ImageSearcher) *ImageHandler {
	return &ImageHandler{
		searcher: searcher,
		log:      log,
	}
}

// GetImage handles GET /api/v1/images?theme=... and always answers with a
// usable URL; lookup failures fall back to placeholders inside the client.
func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.ImageHandler.GetImage()"
	log := h.log.With(slog.String("op", op))

	theme := r.URL.Query().Get("theme")
	if theme == "" {
		log.Error("handler error", sl.Err(fmt.Errorf("empty theme")))
		if httpErr := utils.Err(w, http.StatusBadRequest, fmt.Errorf("theme query parameter is required")); httpErr != nil {
			log.Error("error sending http response", sl.Err(httpErr))
		}
		return
	}

	url := h.searcher.SearchImage(r.Context(), theme)

	if err := utils.Json(w, http.StatusOK, map[string]string{"url": url}); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}
