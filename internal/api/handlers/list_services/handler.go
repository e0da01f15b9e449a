package list_services

import (
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/services/models"
)

const msgMissingShop = "shop could not be resolved"

type Handler struct {
	service ServicesService
	logger  Logger
}

func NewHandler(service ServicesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /services - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	list, err := h.service.List(r.Context(), shop.ID)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: shop_id=%d, error=%v", shop.ID, err)
		handlers.RespondInternalError(w)
		return
	}
	if list == nil {
		list = []*models.ServiceSummary{}
	}

	h.logger.Info("GET /services - Services listed: shop_id=%d, count=%d", shop.ID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
