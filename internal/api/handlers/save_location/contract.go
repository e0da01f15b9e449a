package save_location

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/locations/models"
)

type LocationsService interface {
	Save(ctx context.Context, shopID int64, req *models.SaveLocationRequest) (*models.LocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
