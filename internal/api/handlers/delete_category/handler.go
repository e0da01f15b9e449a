package delete_category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/categories"
)

const (
	msgInvalidCategoryID = "invalid category ID"
	msgMissingShop       = "shop could not be resolved"
	msgNotFound          = "category not found"
)

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

// Handle DELETE /api/v1/categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID, err := strconv.ParseInt(vars["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /categories/{id} - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	if err := h.service.Delete(r.Context(), shop.ID, categoryID); err != nil {
		switch {
		case errors.Is(err, categories.ErrCategoryNotFound):
			h.logger.Warn("DELETE /categories/{id} - Category not found: category_id=%d, shop_id=%d", categoryID, shop.ID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /categories/{id} - Failed to delete category: category_id=%d, error=%v", categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /categories/{id} - Category deleted: category_id=%d, shop_id=%d", categoryID, shop.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
