package save_settings

import (
	"errors"
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/settings"
	"github.com/bookeasy/admin-service/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingShop        = "shop could not be resolved"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /settings - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	var req models.SaveSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Save(r.Context(), shop.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid input: shop_id=%d, error=%v", shop.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /settings - Failed to save settings: shop_id=%d, error=%v", shop.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings saved: shop_id=%d", shop.ID)
	handlers.RespondJSON(w, http.StatusOK, saved)
}
