package list_staff_groups

import (
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/staffmembers/models"
)

const msgMissingShop = "shop could not be resolved"

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff-groups
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /staff-groups - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	list, err := h.service.ListGroups(r.Context(), shop.ID)
	if err != nil {
		h.logger.Error("GET /staff-groups - Failed to list staff groups: shop_id=%d, error=%v", shop.ID, err)
		handlers.RespondInternalError(w)
		return
	}
	if list == nil {
		list = []*models.GroupResponse{}
	}

	h.logger.Info("GET /staff-groups - Staff groups listed: shop_id=%d, count=%d", shop.ID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
