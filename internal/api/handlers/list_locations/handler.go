package list_locations

import (
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/locations/models"
)

const msgMissingShop = "shop could not be resolved"

type Handler struct {
	service LocationsService
	logger  Logger
}

func NewHandler(service LocationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /locations - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	list, err := h.service.List(r.Context(), shop.ID)
	if err != nil {
		h.logger.Error("GET /locations - Failed to list locations: shop_id=%d, error=%v", shop.ID, err)
		handlers.RespondInternalError(w)
		return
	}
	if list == nil {
		list = []*models.LocationResponse{}
	}

	h.logger.Info("GET /locations - Locations listed: shop_id=%d, count=%d", shop.ID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
