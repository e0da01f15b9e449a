package delete_staff_group

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/staffmembers"
)

const (
	msgInvalidGroupID = "invalid staff group ID"
	msgMissingShop    = "shop could not be resolved"
	msgNotFound       = "staff group not found"
)

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

// Handle DELETE /api/v1/staff-groups/{groupId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /staff-groups/{id} - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /staff-groups/{id} - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	if err := h.service.DeleteGroup(r.Context(), shop.ID, groupID); err != nil {
		switch {
		case errors.Is(err, staffmembers.ErrGroupNotFound):
			h.logger.Warn("DELETE /staff-groups/{id} - Staff group not found: group_id=%d, shop_id=%d", groupID, shop.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /staff-groups/{id} - Failed to delete staff group: group_id=%d, error=%v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff-groups/{id} - Staff group deleted: group_id=%d, shop_id=%d", groupID, shop.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
