package get_service

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/services/models"
)

type ServicesService interface {
	Get(ctx context.Context, shopID, serviceID int64) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
