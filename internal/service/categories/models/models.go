package models

import (
	"time"

	"github.com/bookeasy/admin-service/internal/domain"
)

// SaveCategoryRequest creates a category when ID is nil and updates
// it otherwise. A blank slug is derived from the name.
type SaveCategoryRequest struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ToDomain maps the request to the domain entity
func (r *SaveCategoryRequest) ToDomain(shopID int64) *domain.ServiceCategory {
	cat := &domain.ServiceCategory{
		ShopID: shopID,
		Name:   r.Name,
		Slug:   r.Slug,
	}
	if r.ID != nil {
		cat.ID = *r.ID
	}
	return cat
}

// CategoryResponse is the API shape of a category
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomain maps a category to its response shape
func FromDomain(cat *domain.ServiceCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		Slug:      cat.Slug,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}
