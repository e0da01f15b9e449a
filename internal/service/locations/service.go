package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	locationRepo "github.com/bookeasy/admin-service/internal/infra/storage/location"
	"github.com/bookeasy/admin-service/internal/service/locations/models"
)

// Service manages the locations of a shop
type Service struct {
	locationRepo LocationRepository
	logger       Logger
}

// NewService creates a locations service
func NewService(locationRepo LocationRepository, logger Logger) *Service {
	return &Service{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Save creates or updates a location depending on whether the
// request carries an id.
func (s *Service) Save(ctx context.Context, shopID int64, req *models.SaveLocationRequest) (*models.LocationResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: location name is required", ErrInvalidInput)
	}

	loc := req.ToDomain(shopID)

	if req.ID == nil {
		created, err := s.locationRepo.Create(ctx, loc)
		if err != nil {
			s.logger.Error("Save: failed to create location for shop=%d: %v", shopID, err)
			return nil, fmt.Errorf("%w: Save - create: %v", ErrInternal, err)
		}
		s.logger.Info("Save: created location id=%d for shop=%d", created.ID, shopID)
		return models.FromDomain(created), nil
	}

	updated, err := s.locationRepo.Update(ctx, loc)
	if errors.Is(err, locationRepo.ErrLocationNotFound) {
		s.logger.Warn("Save: location id=%d not found in shop=%d", *req.ID, shopID)
		return nil, ErrLocationNotFound
	}
	if err != nil {
		s.logger.Error("Save: failed to update location id=%d: %v", *req.ID, err)
		return nil, fmt.Errorf("%w: Save - update: %v", ErrInternal, err)
	}

	s.logger.Info("Save: updated location id=%d for shop=%d", updated.ID, shopID)
	return models.FromDomain(updated), nil
}

// List returns all locations of a shop
func (s *Service) List(ctx context.Context, shopID int64) ([]*models.LocationResponse, error) {
	list, err := s.locationRepo.ListByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("List: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	responses := make([]*models.LocationResponse, 0, len(list))
	for _, loc := range list {
		responses = append(responses, models.FromDomain(loc))
	}
	return responses, nil
}

// Delete removes a location
func (s *Service) Delete(ctx context.Context, shopID, id int64) error {
	err := s.locationRepo.Delete(ctx, shopID, id)
	if errors.Is(err, locationRepo.ErrLocationNotFound) {
		s.logger.Warn("Delete: location id=%d not found in shop=%d", id, shopID)
		return ErrLocationNotFound
	}
	if err != nil {
		s.logger.Error("Delete: repository error for location=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed location id=%d from shop=%d", id, shopID)
	return nil
}
