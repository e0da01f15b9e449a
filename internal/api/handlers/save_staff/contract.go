package save_staff

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/staffmembers/models"
)

type StaffService interface {
	SaveMember(ctx context.Context, shopID int64, req *models.SaveStaffRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
