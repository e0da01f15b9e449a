package get_booking_data

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/services/models"
)

type ServicesService interface {
	BookingData(ctx context.Context, serviceID int64) (*models.BookingDataResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
