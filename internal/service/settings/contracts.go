package settings

import (
	"context"

	"github.com/bookeasy/admin-service/internal/domain"
)

// SettingsRepository is the persistence surface for shop settings
type SettingsRepository interface {
	GetByShop(ctx context.Context, shopID int64) (*domain.GeneralSettings, error)
	Upsert(ctx context.Context, s *domain.GeneralSettings) (*domain.GeneralSettings, error)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
