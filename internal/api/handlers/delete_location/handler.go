package delete_location

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/locations"
)

const (
	msgInvalidLocationID = "invalid location ID"
	msgMissingShop       = "shop could not be resolved"
	msgNotFound          = "location not found"
)

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

// Handle DELETE /api/v1/locations/{locationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /locations/{id} - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /locations/{id} - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	if err := h.service.Delete(r.Context(), shop.ID, locationID); err != nil {
		switch {
		case errors.Is(err, locations.ErrLocationNotFound):
			h.logger.Warn("DELETE /locations/{id} - Location not found: location_id=%d, shop_id=%d", locationID, shop.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /locations/{id} - Failed to delete location: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /locations/{id} - Location deleted: location_id=%d, shop_id=%d", locationID, shop.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
