package list_services

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/services/models"
)

type ServicesService interface {
	List(ctx context.Context, shopID int64) ([]*models.ServiceSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
