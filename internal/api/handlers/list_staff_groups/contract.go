package list_staff_groups

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/staffmembers/models"
)

type StaffService interface {
	ListGroups(ctx context.Context, shopID int64) ([]*models.GroupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
