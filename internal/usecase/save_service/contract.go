package save_service

import (
	"context"
	"encoding/json"

	"github.com/bookeasy/admin-service/internal/domain"
)

// ServiceRepository is the persistence surface the use case needs
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, shopID, id int64) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	ReplaceSlots(ctx context.Context, serviceID int64, configuration json.RawMessage) error
}

// TransactionManager runs the service write and the slot swap as one
// atomic unit.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
