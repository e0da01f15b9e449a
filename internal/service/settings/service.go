package settings

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/bookeasy/admin-service/internal/domain"
	settingsRepo "github.com/bookeasy/admin-service/internal/infra/storage/settings"
	"github.com/bookeasy/admin-service/internal/service/settings/models"
)

// Service manages the shop-wide settings
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService creates a settings service
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get returns the shop settings, falling back to defaults when the
// shop has never saved them.
func (s *Service) Get(ctx context.Context, shopID int64) (*models.SettingsResponse, error) {
	stored, err := s.settingsRepo.GetByShop(ctx, shopID)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return models.FromDomain(defaultSettings(shopID)), nil
	}
	if err != nil {
		s.logger.Error("Get: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(stored), nil
}

// Save upserts the shop settings
func (s *Service) Save(ctx context.Context, shopID int64, req *models.SaveSettingsRequest) (*models.SettingsResponse, error) {
	if req.WeekStart != "" && !domain.IsValidWeekday(req.WeekStart) {
		return nil, fmt.Errorf("%w: unknown week start %q", ErrInvalidInput, req.WeekStart)
	}
	if err := validateEmail(req.SenderEmail); err != nil {
		return nil, fmt.Errorf("%w: sender email: %v", ErrInvalidInput, err)
	}
	if err := validateEmail(req.AdminNotificationEmail); err != nil {
		return nil, fmt.Errorf("%w: admin notification email: %v", ErrInvalidInput, err)
	}
	for _, addr := range req.AdditionalEmails {
		if err := validateEmail(&addr); err != nil {
			return nil, fmt.Errorf("%w: additional email: %v", ErrInvalidInput, err)
		}
	}

	settings := req.ToDomain(shopID)
	if settings.WeekStart == "" {
		settings.WeekStart = domain.Monday
	}

	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Save: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: stored settings for shop=%d", shopID)
	return models.FromDomain(saved), nil
}

func validateEmail(v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	if _, err := mail.ParseAddress(*v); err != nil {
		return fmt.Errorf("invalid address %q", *v)
	}
	return nil
}

// defaultSettings is what a shop sees before its first save: every
// notification on, Monday week start, addresses unset.
func defaultSettings(shopID int64) *domain.GeneralSettings {
	return &domain.GeneralSettings{
		ShopID:                    shopID,
		Timezone:                  "UTC",
		WeekStart:                 domain.Monday,
		DateFormat:                "MM/DD/YYYY",
		TimeFormat:                "12h",
		AdditionalEmails:          []string{},
		EmailOnNewBooking:         true,
		EmailOnCancelledBooking:   true,
		EmailOnRescheduledBooking: true,
	}
}
