package save_service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
	serviceRepo "github.com/bookeasy/admin-service/internal/infra/storage/service"
	"github.com/bookeasy/admin-service/pkg/ptr"
)

type stubRepository struct {
	existing *domain.Service

	created        *domain.Service
	updated        *domain.Service
	replacedID     int64
	replacedConfig json.RawMessage

	getErr     error
	createErr  error
	updateErr  error
	replaceErr error
}

func (s *stubRepository) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	saved := *svc
	saved.ID = 42
	saved.CreatedAt = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	saved.UpdatedAt = saved.CreatedAt
	s.created = &saved
	return &saved, nil
}

func (s *stubRepository) GetByID(_ context.Context, _, _ int64) (*domain.Service, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.existing, nil
}

func (s *stubRepository) Update(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	saved := *svc
	saved.UpdatedAt = time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)
	s.updated = &saved
	return &saved, nil
}

func (s *stubRepository) ReplaceSlots(_ context.Context, serviceID int64, configuration json.RawMessage) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replacedID = serviceID
	s.replacedConfig = configuration
	return nil
}

type stubTxManager struct {
	calls int
}

func (s *stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		ShopID:       7,
		Name:         "Haircut",
		Timezone:     "Europe/Berlin",
		BookingType:  domain.BookingTypeGeneral,
		ServiceType:  domain.ServiceTypeRegular,
		ProductID:    ptr.To("gid://shopify/Product/1"),
		Duration:     60,
		DurationUnit: domain.UnitMinutes,
	}
}

func TestExecute_CreateDraft(t *testing.T) {
	repo := &stubRepository{}
	tx := &stubTxManager{}
	uc := NewUseCase(repo, tx, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.updated)

	// Missing week falls back to the type defaults in the flat form
	assert.Equal(t, int64(42), repo.replacedID)
	var flat struct {
		Slots []domain.DaySlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(repo.replacedConfig, &flat))
	require.Len(t, flat.Slots, 1)
	assert.Equal(t, "09:00", flat.Slots[0].Start)
	assert.Equal(t, "17:00", flat.Slots[0].End)
}

func TestExecute_CreateWithExplicitWeek(t *testing.T) {
	repo := &stubRepository{}
	uc := NewUseCase(repo, &stubTxManager{}, noopLogger{})

	week := domain.WeekSchedule{}
	week.SetSlotsFor(domain.Monday, []domain.DaySlot{{Start: "10:00", End: "12:00"}})

	req := validRequest()
	req.Week = &week

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	var flat struct {
		Slots []domain.DaySlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(repo.replacedConfig, &flat))
	require.Len(t, flat.Slots, 1)
	assert.Equal(t, "10:00", flat.Slots[0].Start)
}

func TestExecute_UpdateKeepsType(t *testing.T) {
	repo := &stubRepository{
		existing: &domain.Service{ID: 42, ShopID: 7, ServiceType: domain.ServiceTypeRegular},
	}
	uc := NewUseCase(repo, &stubTxManager{}, noopLogger{})

	req := validRequest()
	req.ServiceID = ptr.To(int64(42))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	require.NotNil(t, repo.updated)
	assert.Nil(t, repo.created)
}

func TestExecute_RejectsTypeChange(t *testing.T) {
	repo := &stubRepository{
		existing: &domain.Service{ID: 42, ShopID: 7, ServiceType: domain.ServiceTypeFullDay},
	}
	uc := NewUseCase(repo, &stubTxManager{}, noopLogger{})

	req := validRequest()
	req.ServiceID = ptr.To(int64(42))

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrServiceTypeChanged)
}

func TestExecute_UpdateMissingService(t *testing.T) {
	repo := &stubRepository{getErr: serviceRepo.ErrServiceNotFound}
	uc := NewUseCase(repo, &stubTxManager{}, noopLogger{})

	req := validRequest()
	req.ServiceID = ptr.To(int64(99))

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubRepository{}, &stubTxManager{}, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero shop", func(r *Request) { r.ShopID = 0 }},
		{"bad type", func(r *Request) { r.ServiceType = "weekly" }},
		{"negative duration", func(r *Request) { r.Duration = -5 }},
		{"non positive id", func(r *Request) { r.ServiceID = ptr.To(int64(0)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_DraftAllowsIncompleteService(t *testing.T) {
	repo := &stubRepository{}
	uc := NewUseCase(repo, &stubTxManager{}, noopLogger{})

	// No product, no payment: fine as a draft
	req := validRequest()
	req.ProductID = nil

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_DraftStillRequiresName(t *testing.T) {
	uc := NewUseCase(&stubRepository{}, &stubTxManager{}, noopLogger{})

	req := validRequest()
	req.Name = "   "

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidationFailed)
}

func TestExecute_PublishRunsFullValidation(t *testing.T) {
	uc := NewUseCase(&stubRepository{}, &stubTxManager{}, noopLogger{})

	req := validRequest()
	req.Publish = true
	req.ProductID = nil

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidationFailed)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Violations)
}

func TestExecute_PublishValidService(t *testing.T) {
	repo := &stubRepository{}
	uc := NewUseCase(repo, &stubTxManager{}, noopLogger{})

	online := domain.LocationTypeOnline
	req := validRequest()
	req.Publish = true
	req.LocationType = &online
	req.Payment = &domain.PaymentPreference{Type: domain.PaymentFull}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_TransactionFailure(t *testing.T) {
	repo := &stubRepository{replaceErr: errors.New("disk full")}
	uc := NewUseCase(repo, &stubTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
}
