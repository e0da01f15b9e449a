package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
	settingsRepo "github.com/bookeasy/admin-service/internal/infra/storage/settings"
	"github.com/bookeasy/admin-service/internal/service/settings/models"
	"github.com/bookeasy/admin-service/pkg/ptr"
)

type stubRepository struct {
	stored   *domain.GeneralSettings
	upserted *domain.GeneralSettings
}

func (s *stubRepository) GetByShop(context.Context, int64) (*domain.GeneralSettings, error) {
	if s.stored == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return s.stored, nil
}

func (s *stubRepository) Upsert(_ context.Context, settings *domain.GeneralSettings) (*domain.GeneralSettings, error) {
	s.upserted = settings
	return settings, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&stubRepository{}, noopLogger{})

	resp, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, domain.Monday, resp.WeekStart)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.True(t, resp.EmailOnNewBooking)
	assert.True(t, resp.EmailOnCancelledBooking)
	assert.True(t, resp.EmailOnRescheduledBooking)
	assert.Nil(t, resp.SenderEmail)
}

func TestGet_ReturnsStored(t *testing.T) {
	repo := &stubRepository{stored: &domain.GeneralSettings{
		ShopID:      7,
		CompanyName: "Acme Spa",
		WeekStart:   domain.Sunday,
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Acme Spa", resp.CompanyName)
	assert.Equal(t, domain.Sunday, resp.WeekStart)
}

func TestSave_Roundtrip(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Save(context.Background(), 7, &models.SaveSettingsRequest{
		CompanyName:      "Acme Spa",
		Timezone:         "Europe/Berlin",
		WeekStart:        domain.Sunday,
		RefundOnCancel:   true,
		AdditionalEmails: []string{"ops@acme.example"},
		SenderEmail:      ptr.To("noreply@acme.example"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Spa", resp.CompanyName)
	assert.Equal(t, []string{"ops@acme.example"}, resp.AdditionalEmails)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(7), repo.upserted.ShopID)
}

func TestSave_DefaultsWeekStart(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Save(context.Background(), 7, &models.SaveSettingsRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.Monday, resp.WeekStart)
}

func TestSave_RejectsBadInput(t *testing.T) {
	svc := NewService(&stubRepository{}, noopLogger{})

	tests := []struct {
		name string
		req  models.SaveSettingsRequest
	}{
		{"bad week start", models.SaveSettingsRequest{WeekStart: "someday"}},
		{"bad sender email", models.SaveSettingsRequest{SenderEmail: ptr.To("not-an-email")}},
		{"bad additional email", models.SaveSettingsRequest{AdditionalEmails: []string{"nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), 7, &tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
