package delete_category

import "context"

type CategoriesService interface {
	Delete(ctx context.Context, shopID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
