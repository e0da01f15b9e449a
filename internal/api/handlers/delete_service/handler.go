package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/services"
)

const (
	msgInvalidServiceID = "invalid service ID"
	msgMissingShop      = "shop could not be resolved"
	msgNotFound         = "service not found"
)

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

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /services/{id} - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	if err := h.service.Delete(r.Context(), shop.ID, serviceID); err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: service_id=%d, shop_id=%d", serviceID, shop.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: service_id=%d, shop_id=%d", serviceID, shop.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
