package staffmembers

import (
	"context"

	"github.com/bookeasy/admin-service/internal/domain"
)

// StaffRepository is the persistence surface for staff and groups
type StaffRepository interface {
	Create(ctx context.Context, member *domain.Staff) (*domain.Staff, error)
	Update(ctx context.Context, member *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, shopID, id int64) (*domain.Staff, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Staff, error)
	Delete(ctx context.Context, shopID, id int64) error

	CreateGroup(ctx context.Context, group *domain.StaffGroup) (*domain.StaffGroup, error)
	UpdateGroup(ctx context.Context, group *domain.StaffGroup) (*domain.StaffGroup, error)
	ListGroupsByShop(ctx context.Context, shopID int64) ([]*domain.StaffGroup, error)
	DeleteGroup(ctx context.Context, shopID, id int64) error
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
