package delete_location

import "context"

type LocationsService interface {
	Delete(ctx context.Context, shopID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
