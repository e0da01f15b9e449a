package save_location

import (
	"errors"
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/locations"
	"github.com/bookeasy/admin-service/internal/service/locations/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingShop        = "shop could not be resolved"
	msgNotFound           = "location not found"
	msgInvalidInput       = "invalid input data"
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

// Handle POST /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /locations - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	var req models.SaveLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	location, err := h.service.Save(r.Context(), shop.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, locations.ErrLocationNotFound):
			h.logger.Warn("POST /locations - Location not found: shop_id=%d", shop.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, locations.ErrInvalidInput):
			h.logger.Warn("POST /locations - Invalid input: shop_id=%d, error=%v", shop.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /locations - Failed to save location: shop_id=%d, error=%v", shop.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}

	h.logger.Info("POST /locations - Location saved: location_id=%d, shop_id=%d", location.ID, shop.ID)
	handlers.RespondJSON(w, status, location)
}
