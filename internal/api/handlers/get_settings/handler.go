package get_settings

import (
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
)

const msgMissingShop = "shop could not be resolved"

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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /settings - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	settings, err := h.service.Get(r.Context(), shop.ID)
	if err != nil {
		h.logger.Error("GET /settings - Failed to get settings: shop_id=%d, error=%v", shop.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Settings retrieved: shop_id=%d", shop.ID)
	handlers.RespondJSON(w, http.StatusOK, settings)
}
