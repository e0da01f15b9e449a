package staffmembers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	staffRepo "github.com/bookeasy/admin-service/internal/infra/storage/staff"
	"github.com/bookeasy/admin-service/internal/service/staffmembers/models"
)

// Service manages the staff members and staff groups of a shop
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService creates a staff service
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// SaveMember creates or updates a staff member. Name and phone are
// both mandatory; the booking widget shows them together.
func (s *Service) SaveMember(ctx context.Context, shopID int64, req *models.SaveStaffRequest) (*models.StaffResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: staff name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: staff phone is required", ErrInvalidInput)
	}

	member := req.ToDomain(shopID)

	if req.ID == nil {
		created, err := s.staffRepo.Create(ctx, member)
		if err != nil {
			s.logger.Error("SaveMember: failed to create staff for shop=%d: %v", shopID, err)
			return nil, fmt.Errorf("%w: SaveMember - create: %v", ErrInternal, err)
		}
		s.logger.Info("SaveMember: created staff id=%d for shop=%d", created.ID, shopID)
		return models.FromDomain(created), nil
	}

	updated, err := s.staffRepo.Update(ctx, member)
	if errors.Is(err, staffRepo.ErrStaffNotFound) {
		s.logger.Warn("SaveMember: staff id=%d not found in shop=%d", *req.ID, shopID)
		return nil, ErrStaffNotFound
	}
	if err != nil {
		s.logger.Error("SaveMember: failed to update staff id=%d: %v", *req.ID, err)
		return nil, fmt.Errorf("%w: SaveMember - update: %v", ErrInternal, err)
	}

	s.logger.Info("SaveMember: updated staff id=%d for shop=%d", updated.ID, shopID)
	return models.FromDomain(updated), nil
}

// ListMembers returns all staff members of a shop in menu order
func (s *Service) ListMembers(ctx context.Context, shopID int64) ([]*models.StaffResponse, error) {
	list, err := s.staffRepo.ListByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("ListMembers: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: ListMembers - repository error: %v", ErrInternal, err)
	}

	responses := make([]*models.StaffResponse, 0, len(list))
	for _, member := range list {
		responses = append(responses, models.FromDomain(member))
	}
	return responses, nil
}

// DeleteMember removes a staff member
func (s *Service) DeleteMember(ctx context.Context, shopID, id int64) error {
	err := s.staffRepo.Delete(ctx, shopID, id)
	if errors.Is(err, staffRepo.ErrStaffNotFound) {
		s.logger.Warn("DeleteMember: staff id=%d not found in shop=%d", id, shopID)
		return ErrStaffNotFound
	}
	if err != nil {
		s.logger.Error("DeleteMember: repository error for staff=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteMember: removed staff id=%d from shop=%d", id, shopID)
	return nil
}

// SaveGroup creates or updates a staff group. Membership is verified
// against the shop's staff so a group never references foreign or
// deleted members.
func (s *Service) SaveGroup(ctx context.Context, shopID int64, req *models.SaveGroupRequest) (*models.GroupResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}

	// 1. Verify every referenced member exists in this shop
	members, err := s.staffRepo.ListByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("SaveGroup: failed to list staff for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: SaveGroup - list staff: %v", ErrInternal, err)
	}
	known := make(map[int64]struct{}, len(members))
	for _, m := range members {
		known[m.ID] = struct{}{}
	}
	for _, id := range req.StaffIDs {
		if _, ok := known[id]; !ok {
			s.logger.Warn("SaveGroup: staff id=%d not found in shop=%d", id, shopID)
			return nil, fmt.Errorf("%w: staff member %d does not exist", ErrInvalidInput, id)
		}
	}

	group := req.ToDomain(shopID)

	// 2. Create or update
	if req.ID == nil {
		created, err := s.staffRepo.CreateGroup(ctx, group)
		if err != nil {
			s.logger.Error("SaveGroup: failed to create group for shop=%d: %v", shopID, err)
			return nil, fmt.Errorf("%w: SaveGroup - create: %v", ErrInternal, err)
		}
		s.logger.Info("SaveGroup: created group id=%d for shop=%d", created.ID, shopID)
		return models.GroupFromDomain(created), nil
	}

	updated, err := s.staffRepo.UpdateGroup(ctx, group)
	if errors.Is(err, staffRepo.ErrGroupNotFound) {
		s.logger.Warn("SaveGroup: group id=%d not found in shop=%d", *req.ID, shopID)
		return nil, ErrGroupNotFound
	}
	if err != nil {
		s.logger.Error("SaveGroup: failed to update group id=%d: %v", *req.ID, err)
		return nil, fmt.Errorf("%w: SaveGroup - update: %v", ErrInternal, err)
	}

	s.logger.Info("SaveGroup: updated group id=%d for shop=%d", updated.ID, shopID)
	return models.GroupFromDomain(updated), nil
}

// ListGroups returns all staff groups of a shop
func (s *Service) ListGroups(ctx context.Context, shopID int64) ([]*models.GroupResponse, error) {
	list, err := s.staffRepo.ListGroupsByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("ListGroups: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: ListGroups - repository error: %v", ErrInternal, err)
	}

	responses := make([]*models.GroupResponse, 0, len(list))
	for _, group := range list {
		responses = append(responses, models.GroupFromDomain(group))
	}
	return responses, nil
}

// DeleteGroup removes a staff group
func (s *Service) DeleteGroup(ctx context.Context, shopID, id int64) error {
	err := s.staffRepo.DeleteGroup(ctx, shopID, id)
	if errors.Is(err, staffRepo.ErrGroupNotFound) {
		s.logger.Warn("DeleteGroup: group id=%d not found in shop=%d", id, shopID)
		return ErrGroupNotFound
	}
	if err != nil {
		s.logger.Error("DeleteGroup: repository error for group=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteGroup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteGroup: removed group id=%d from shop=%d", id, shopID)
	return nil
}
