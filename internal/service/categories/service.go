package categories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	categoryRepo "github.com/bookeasy/admin-service/internal/infra/storage/category"
	"github.com/bookeasy/admin-service/internal/service/categories/models"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Service manages the service categories of a shop
type Service struct {
	categoryRepo CategoryRepository
	logger       Logger
}

// NewService creates a categories service
func NewService(categoryRepo CategoryRepository, logger Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Save creates or updates a category. A blank slug is derived from
// the name.
func (s *Service) Save(ctx context.Context, shopID int64, req *models.SaveCategoryRequest) (*models.CategoryResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Slug) == "" {
		req.Slug = Slugify(req.Name)
	}

	cat := req.ToDomain(shopID)

	if req.ID == nil {
		created, err := s.categoryRepo.Create(ctx, cat)
		if errors.Is(err, categoryRepo.ErrDuplicateSlug) {
			s.logger.Warn("Save: duplicate slug %q for shop=%d", req.Slug, shopID)
			return nil, ErrDuplicateSlug
		}
		if err != nil {
			s.logger.Error("Save: failed to create category for shop=%d: %v", shopID, err)
			return nil, fmt.Errorf("%w: Save - create: %v", ErrInternal, err)
		}
		s.logger.Info("Save: created category id=%d for shop=%d", created.ID, shopID)
		return models.FromDomain(created), nil
	}

	updated, err := s.categoryRepo.Update(ctx, cat)
	if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
		s.logger.Warn("Save: category id=%d not found in shop=%d", *req.ID, shopID)
		return nil, ErrCategoryNotFound
	}
	if errors.Is(err, categoryRepo.ErrDuplicateSlug) {
		s.logger.Warn("Save: duplicate slug %q for shop=%d", req.Slug, shopID)
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		s.logger.Error("Save: failed to update category id=%d: %v", *req.ID, err)
		return nil, fmt.Errorf("%w: Save - update: %v", ErrInternal, err)
	}

	s.logger.Info("Save: updated category id=%d for shop=%d", updated.ID, shopID)
	return models.FromDomain(updated), nil
}

// List returns all categories of a shop
func (s *Service) List(ctx context.Context, shopID int64) ([]*models.CategoryResponse, error) {
	list, err := s.categoryRepo.ListByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("List: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	responses := make([]*models.CategoryResponse, 0, len(list))
	for _, cat := range list {
		responses = append(responses, models.FromDomain(cat))
	}
	return responses, nil
}

// Delete removes a category
func (s *Service) Delete(ctx context.Context, shopID, id int64) error {
	err := s.categoryRepo.Delete(ctx, shopID, id)
	if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
		s.logger.Warn("Delete: category id=%d not found in shop=%d", id, shopID)
		return ErrCategoryNotFound
	}
	if err != nil {
		s.logger.Error("Delete: repository error for category=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed category id=%d from shop=%d", id, shopID)
	return nil
}

// Slugify lowercases a name and collapses everything outside [a-z0-9]
// into single hyphens.
func Slugify(name string) string {
	slug := slugInvalidChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
