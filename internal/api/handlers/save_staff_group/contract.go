package save_staff_group

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/staffmembers/models"
)

type StaffService interface {
	SaveGroup(ctx context.Context, shopID int64, req *models.SaveGroupRequest) (*models.GroupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
