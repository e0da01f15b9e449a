package save_staff_group

import (
	"errors"
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/staffmembers"
	"github.com/bookeasy/admin-service/internal/service/staffmembers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingShop        = "shop could not be resolved"
	msgNotFound           = "staff group not found"
	msgInvalidInput       = "invalid input data"
	msgUnknownMember      = "staff group references an unknown staff member"
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

// Handle POST /api/v1/staff-groups
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /staff-groups - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	var req models.SaveGroupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff-groups - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	group, err := h.service.SaveGroup(r.Context(), shop.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, staffmembers.ErrGroupNotFound):
			h.logger.Warn("POST /staff-groups - Staff group not found: shop_id=%d", shop.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staffmembers.ErrStaffNotFound):
			h.logger.Warn("POST /staff-groups - Unknown staff member in group: shop_id=%d", shop.ID)
			handlers.RespondBadRequest(w, msgUnknownMember)

		case errors.Is(err, staffmembers.ErrInvalidInput):
			h.logger.Warn("POST /staff-groups - Invalid input: shop_id=%d, error=%v", shop.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff-groups - Failed to save staff group: shop_id=%d, error=%v", shop.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}

	h.logger.Info("POST /staff-groups - Staff group saved: group_id=%d, shop_id=%d", group.ID, shop.ID)
	handlers.RespondJSON(w, status, group)
}
