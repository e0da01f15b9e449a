package domain

import "time"

// ServiceCategory groups services for menu display
type ServiceCategory struct {
	ID        int64
	ShopID    int64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
