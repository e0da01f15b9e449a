package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
	serviceRepo "github.com/bookeasy/admin-service/internal/infra/storage/service"
	"github.com/bookeasy/admin-service/internal/integrations/productcatalog"
	"github.com/bookeasy/admin-service/pkg/ptr"
)

type stubRepository struct {
	service  *domain.Service
	slots    json.RawMessage
	slotsErr error
}

func (s *stubRepository) GetByID(_ context.Context, _, id int64) (*domain.Service, error) {
	if s.service == nil || s.service.ID != id {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s.service, nil
}

func (s *stubRepository) FindByID(_ context.Context, id int64) (*domain.Service, error) {
	if s.service == nil || s.service.ID != id {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s.service, nil
}

func (s *stubRepository) ListByShop(context.Context, int64) ([]*domain.Service, error) {
	if s.service == nil {
		return nil, nil
	}
	return []*domain.Service{s.service}, nil
}

func (s *stubRepository) Delete(_ context.Context, _, id int64) error {
	if s.service == nil || s.service.ID != id {
		return serviceRepo.ErrServiceNotFound
	}
	return nil
}

func (s *stubRepository) GetSlots(context.Context, int64) (json.RawMessage, error) {
	if s.slotsErr != nil {
		return nil, s.slotsErr
	}
	return s.slots, nil
}

type stubCatalog struct {
	product *productcatalog.Product
	err     error
}

func (s *stubCatalog) GetProductWithGracefulDegradation(context.Context, string) (*productcatalog.Product, error) {
	return s.product, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func regularService() *domain.Service {
	return &domain.Service{
		ID:          5,
		ShopID:      7,
		Name:        "Haircut",
		Timezone:    "Europe/Berlin",
		ServiceType: domain.ServiceTypeRegular,
		ProductID:   ptr.To("gid://shopify/Product/1"),
		Duration:    60,
	}
}

func TestBookingData_AssemblesRecord(t *testing.T) {
	repo := &stubRepository{
		service: regularService(),
		slots:   json.RawMessage(`{"slots":[{"start":"09:00","end":"17:00"}]}`),
	}
	catalog := &stubCatalog{product: &productcatalog.Product{ID: "gid://shopify/Product/1", Title: "Haircut"}}
	svc := NewService(repo, catalog, noopLogger{})

	data, err := svc.BookingData(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), data.ServiceID)
	assert.JSONEq(t, `{"slots":[{"start":"09:00","end":"17:00"}]}`, string(data.SlotConfiguration))
	require.NotNil(t, data.Product)
	assert.Equal(t, "Haircut", data.Product.Title)

	// No explicit intake schema stored; built-in fields apply
	require.Len(t, data.CustomerFields, 4)
	assert.Equal(t, "firstname", data.CustomerFields[0].Name)
}

func TestBookingData_SeedsDefaultSlots(t *testing.T) {
	repo := &stubRepository{
		service:  regularService(),
		slotsErr: serviceRepo.ErrSlotsNotFound,
	}
	svc := NewService(repo, &stubCatalog{}, noopLogger{})

	data, err := svc.BookingData(context.Background(), 5)
	require.NoError(t, err)

	var flat struct {
		Slots []domain.DaySlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(data.SlotConfiguration, &flat))
	require.Len(t, flat.Slots, 1)
	assert.Equal(t, "09:00", flat.Slots[0].Start)
}

func TestBookingData_CatalogOutageDropsPreview(t *testing.T) {
	repo := &stubRepository{
		service: regularService(),
		slots:   json.RawMessage(`{"slots":[]}`),
	}
	catalog := &stubCatalog{err: productcatalog.ErrServiceDegraded}
	svc := NewService(repo, catalog, noopLogger{})

	data, err := svc.BookingData(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, data.Product)
}

func TestBookingData_ServiceNotFound(t *testing.T) {
	svc := NewService(&stubRepository{}, &stubCatalog{}, noopLogger{})

	_, err := svc.BookingData(context.Background(), 99)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGet_ExpandsFlatSlotsOntoWeek(t *testing.T) {
	repo := &stubRepository{
		service: regularService(),
		slots:   json.RawMessage(`{"slots":[{"start":"10:00","end":"12:00"}]}`),
	}
	svc := NewService(repo, &stubCatalog{}, noopLogger{})

	resp, err := svc.Get(context.Background(), 7, 5)
	require.NoError(t, err)

	require.NotNil(t, resp.Week)
	monday := resp.Week.SlotsFor(domain.Monday)
	require.Len(t, monday, 1)
	assert.Equal(t, "10:00", monday[0].Start)
	assert.Equal(t, monday, resp.Week.SlotsFor(domain.Sunday))
}

func TestDelete_Missing(t *testing.T) {
	svc := NewService(&stubRepository{}, &stubCatalog{}, noopLogger{})

	err := svc.Delete(context.Background(), 7, 99)
	require.ErrorIs(t, err, ErrServiceNotFound)
}
