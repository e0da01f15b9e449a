package locations

import (
	"context"

	"github.com/bookeasy/admin-service/internal/domain"
)

// LocationRepository is the persistence surface for locations
type LocationRepository interface {
	Create(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	Update(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	GetByID(ctx context.Context, shopID, id int64) (*domain.Location, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Location, error)
	Delete(ctx context.Context, shopID, id int64) error
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
