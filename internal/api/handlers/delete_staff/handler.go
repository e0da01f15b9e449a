package delete_staff

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
	msgInvalidStaffID = "invalid staff ID"
	msgMissingShop    = "shop could not be resolved"
	msgNotFound       = "staff member not found"
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

// Handle DELETE /api/v1/staff/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /staff/{id} - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	if err := h.service.DeleteMember(r.Context(), shop.ID, staffID); err != nil {
		switch {
		case errors.Is(err, staffmembers.ErrStaffNotFound):
			h.logger.Warn("DELETE /staff/{id} - Staff member not found: staff_id=%d, shop_id=%d", staffID, shop.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /staff/{id} - Failed to delete staff member: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id} - Staff member deleted: staff_id=%d, shop_id=%d", staffID, shop.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
