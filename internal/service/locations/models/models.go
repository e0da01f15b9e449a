package models

import (
	"time"

	"github.com/bookeasy/admin-service/internal/domain"
)

// SaveLocationRequest creates a location when ID is nil and updates
// it otherwise.
type SaveLocationRequest struct {
	ID           *int64              `json:"id,omitempty"`
	Name         string              `json:"name"`
	Phone        *string             `json:"phone,omitempty"`
	Email        *string             `json:"email,omitempty"`
	Address      domain.Address      `json:"address"`
	WorkingHours domain.WorkingHours `json:"workingHours"`
}

// ToDomain maps the request to the domain entity
func (r *SaveLocationRequest) ToDomain(shopID int64) *domain.Location {
	loc := &domain.Location{
		ShopID:       shopID,
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		WorkingHours: r.WorkingHours,
	}
	if r.ID != nil {
		loc.ID = *r.ID
	}
	return loc
}

// LocationResponse is the API shape of a location
type LocationResponse struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Phone        *string             `json:"phone,omitempty"`
	Email        *string             `json:"email,omitempty"`
	Address      domain.Address      `json:"address"`
	WorkingHours domain.WorkingHours `json:"workingHours"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// FromDomain maps a domain location to its response shape
func FromDomain(loc *domain.Location) *LocationResponse {
	return &LocationResponse{
		ID:           loc.ID,
		Name:         loc.Name,
		Phone:        loc.Phone,
		Email:        loc.Email,
		Address:      loc.Address,
		WorkingHours: loc.WorkingHours,
		CreatedAt:    loc.CreatedAt,
		UpdatedAt:    loc.UpdatedAt,
	}
}
