package domain

import "time"

// Staff is an individual team member who can be attached to services
type Staff struct {
	ID          int64
	ShopID      int64
	Name        string
	Phone       string
	Email       *string
	Title       *string
	MenuOrderBy int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StaffGroup is a named set of staff members bookable as one unit
type StaffGroup struct {
	ID        int64
	ShopID    int64
	Name      string
	StaffIDs  []int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
