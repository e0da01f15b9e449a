package delete_staff

import "context"

type StaffService interface {
	DeleteMember(ctx context.Context, shopID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
