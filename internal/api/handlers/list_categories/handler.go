package list_categories

import (
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/categories/models"
)

const msgMissingShop = "shop could not be resolved"

type Handler struct {
	service CategoriesService
	logger  Logger
}

func NewHandler(service CategoriesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /categories - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	list, err := h.service.List(r.Context(), shop.ID)
	if err != nil {
		h.logger.Error("GET /categories - Failed to list categories: shop_id=%d, error=%v", shop.ID, err)
		handlers.RespondInternalError(w)
		return
	}
	if list == nil {
		list = []*models.CategoryResponse{}
	}

	h.logger.Info("GET /categories - Categories listed: shop_id=%d, count=%d", shop.ID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
