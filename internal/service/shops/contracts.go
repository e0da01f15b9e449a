package shops

import (
	"context"

	"github.com/bookeasy/admin-service/internal/domain"
)

// ShopRepository is the persistence surface for tenant records
type ShopRepository interface {
	GetByDomain(ctx context.Context, shopDomain string) (*domain.Shop, error)
	Create(ctx context.Context, shopDomain string) (*domain.Shop, error)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
