package save_category

import (
	"errors"
	"net/http"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	"github.com/bookeasy/admin-service/internal/service/categories"
	"github.com/bookeasy/admin-service/internal/service/categories/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingShop        = "shop could not be resolved"
	msgNotFound           = "category not found"
	msgInvalidInput       = "invalid input data"
	msgDuplicateSlug      = "category slug already exists"
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

// Handle POST /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /categories - Missing shop in context")
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	var req models.SaveCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.Save(r.Context(), shop.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, categories.ErrCategoryNotFound):
			h.logger.Warn("POST /categories - Category not found: shop_id=%d", shop.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, categories.ErrDuplicateSlug):
			h.logger.Warn("POST /categories - Duplicate slug: shop_id=%d", shop.ID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlug)

		case errors.Is(err, categories.ErrInvalidInput):
			h.logger.Warn("POST /categories - Invalid input: shop_id=%d, error=%v", shop.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /categories - Failed to save category: shop_id=%d, error=%v", shop.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}

	h.logger.Info("POST /categories - Category saved: category_id=%d, shop_id=%d", category.ID, shop.ID)
	handlers.RespondJSON(w, status, category)
}
