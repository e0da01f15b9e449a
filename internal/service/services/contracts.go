package services

import (
	"context"
	"encoding/json"

	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/internal/integrations/productcatalog"
)

// ServiceRepository is the persistence surface for service aggregates
type ServiceRepository interface {
	GetByID(ctx context.Context, shopID, id int64) (*domain.Service, error)
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Service, error)
	Delete(ctx context.Context, shopID, id int64) error
	GetSlots(ctx context.Context, serviceID int64) (json.RawMessage, error)
}

// CatalogClient fetches linked products for the review screen
type CatalogClient interface {
	GetProductWithGracefulDegradation(ctx context.Context, productID string) (*productcatalog.Product, error)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
