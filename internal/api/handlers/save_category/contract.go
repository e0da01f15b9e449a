package save_category

import (
	"context"

	"github.com/bookeasy/admin-service/internal/service/categories/models"
)

type CategoriesService interface {
	Save(ctx context.Context, shopID int64, req *models.SaveCategoryRequest) (*models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
