package list_categories

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/categories/models"
)

type CategoriesService interface {
	List(ctx context.Context, shopID int64) ([]*models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
