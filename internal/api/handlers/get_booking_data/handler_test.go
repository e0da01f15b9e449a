package get_booking_data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/service/services"
	"github.com/bookeasy/admin-service/internal/service/services/models"
)

type stubService struct {
	data  *models.BookingDataResponse
	err   error
	gotID int64
}

func (s *stubService) BookingData(_ context.Context, serviceID int64) (*models.BookingDataResponse, error) {
	s.gotID = serviceID
	return s.data, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceId}/booking-data", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ServesWithoutShopHeader(t *testing.T) {
	svc := &stubService{data: &models.BookingDataResponse{ServiceID: 5, Name: "Haircut"}}
	router := newTestRouter(NewHandler(svc, noopLogger{}))

	// No X-Shop-Domain header and no shop on the context
	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/5/booking-data", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.gotID)
	assert.Contains(t, rec.Body.String(), "Haircut")
}

func TestHandle_InvalidServiceID(t *testing.T) {
	router := newTestRouter(NewHandler(&stubService{}, noopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/abc/booking-data", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	svc := &stubService{err: services.ErrServiceNotFound}
	router := newTestRouter(NewHandler(svc, noopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/99/booking-data", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
