package models

import (
	"time"

	"github.com/bookeasy/admin-service/internal/domain"
)

// SaveStaffRequest creates a staff member when ID is nil and updates
// them otherwise.
type SaveStaffRequest struct {
	ID          *int64  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	Title       *string `json:"title,omitempty"`
	MenuOrderBy int     `json:"menuOrderBy"`
}

// ToDomain maps the request to the domain entity
func (r *SaveStaffRequest) ToDomain(shopID int64) *domain.Staff {
	member := &domain.Staff{
		ShopID:      shopID,
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		Title:       r.Title,
		MenuOrderBy: r.MenuOrderBy,
	}
	if r.ID != nil {
		member.ID = *r.ID
	}
	return member
}

// StaffResponse is the API shape of a staff member
type StaffResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       *string   `json:"email,omitempty"`
	Title       *string   `json:"title,omitempty"`
	MenuOrderBy int       `json:"menuOrderBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomain maps a staff member to its response shape
func FromDomain(member *domain.Staff) *StaffResponse {
	return &StaffResponse{
		ID:          member.ID,
		Name:        member.Name,
		Phone:       member.Phone,
		Email:       member.Email,
		Title:       member.Title,
		MenuOrderBy: member.MenuOrderBy,
		CreatedAt:   member.CreatedAt,
		UpdatedAt:   member.UpdatedAt,
	}
}

// SaveGroupRequest creates a staff group when ID is nil and updates
// it otherwise.
type SaveGroupRequest struct {
	ID       *int64  `json:"id,omitempty"`
	Name     string  `json:"name"`
	StaffIDs []int64 `json:"staffIds"`
}

// ToDomain maps the request to the domain entity
func (r *SaveGroupRequest) ToDomain(shopID int64) *domain.StaffGroup {
	group := &domain.StaffGroup{
		ShopID:   shopID,
		Name:     r.Name,
		StaffIDs: r.StaffIDs,
	}
	if r.ID != nil {
		group.ID = *r.ID
	}
	return group
}

// GroupResponse is the API shape of a staff group
type GroupResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StaffIDs  []int64   `json:"staffIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GroupFromDomain maps a staff group to its response shape
func GroupFromDomain(group *domain.StaffGroup) *GroupResponse {
	staffIDs := group.StaffIDs
	if staffIDs == nil {
		staffIDs = []int64{}
	}
	return &GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		StaffIDs:  staffIDs,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}
