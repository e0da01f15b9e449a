package save_settings

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/settings/models"
)

type SettingsService interface {
	Save(ctx context.Context, shopID int64, req *models.SaveSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
