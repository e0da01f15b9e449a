package categories

import (
	"context"

	"github.com/bookeasy/admin-service/internal/domain"
)

// CategoryRepository is the persistence surface for categories
type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.ServiceCategory) (*domain.ServiceCategory, error)
	Update(ctx context.Context, cat *domain.ServiceCategory) (*domain.ServiceCategory, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.ServiceCategory, error)
	Delete(ctx context.Context, shopID, id int64) error
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
