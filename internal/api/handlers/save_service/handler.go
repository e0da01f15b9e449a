package save_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookeasy/admin-service/internal/api/handlers"
	"github.com/bookeasy/admin-service/internal/api/middleware"
	saveService "github.com/bookeasy/admin-service/internal/usecase/save_service"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidServiceID   = "invalid service ID"
	msgMissingShop        = "shop could not be resolved"
	msgServiceNotFound    = "service not found"
	msgInvalidInput       = "invalid input data"
	msgTypeChanged        = "service type cannot be changed after creation"
)

type Handler struct {
	useCase SaveServiceUseCase
	logger  Logger
}

func NewHandler(useCase SaveServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, nil)
}

// HandleUpdate PUT /api/v1/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}
	h.handle(w, r, &serviceID)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, serviceID *int64) {
	shop, ok := middleware.ShopFromContext(r.Context())
	if !ok {
		h.logger.Warn("%s %s - Missing shop in context", r.Method, r.URL.Path)
		handlers.RespondForbidden(w, msgMissingShop)
		return
	}

	var req SaveServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s %s - Invalid request body: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(shop.ID, serviceID))
	if err != nil {
		var verr *saveService.ValidationError

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("%s %s - Validation failed: shop_id=%d, violations=%d",
				r.Method, r.URL.Path, shop.ID, len(verr.Violations))
			handlers.RespondUnprocessable(w, verr.Violations)

		case errors.Is(err, saveService.ErrServiceNotFound):
			h.logger.Warn("%s %s - Service not found: shop_id=%d", r.Method, r.URL.Path, shop.ID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, saveService.ErrServiceTypeChanged):
			h.logger.Warn("%s %s - Service type change rejected: shop_id=%d", r.Method, r.URL.Path, shop.ID)
			handlers.RespondError(w, http.StatusConflict, msgTypeChanged)

		case errors.Is(err, saveService.ErrInvalidInput):
			h.logger.Warn("%s %s - Invalid input: shop_id=%d, error=%v", r.Method, r.URL.Path, shop.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s %s - Failed to save service: shop_id=%d, error=%v",
				r.Method, r.URL.Path, shop.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if serviceID == nil {
		status = http.StatusCreated
	}

	h.logger.Info("%s %s - Service saved: service_id=%d, shop_id=%d", r.Method, r.URL.Path, result.ID, shop.ID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
