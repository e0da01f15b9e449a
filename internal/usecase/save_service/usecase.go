package save_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookeasy/admin-service/internal/domain"
	serviceRepo "github.com/bookeasy/admin-service/internal/infra/storage/service"
	"github.com/bookeasy/admin-service/internal/slotconfig"
)

// UseCase saves a service draft together with its canonical slot
// configuration in one transaction.
type UseCase struct {
	serviceRepo ServiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates a save-service use case
func NewUseCase(serviceRepo ServiceRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute creates or updates a service and swaps its slot record
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Structural validation of the payload
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. On update, the stored type wins: slot data is shaped by it
	if req.ServiceID != nil {
		existing, err := uc.serviceRepo.GetByID(ctx, req.ShopID, *req.ServiceID)
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: Execute - service id=%d", ErrServiceNotFound, *req.ServiceID)
		}
		if err != nil {
			uc.logger.Error("Execute: load service id=%d failed: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: Execute - load service: %v", ErrInternal, err)
		}
		if existing.ServiceType != req.ServiceType {
			return nil, fmt.Errorf("%w: Execute - stored type %q, requested %q",
				ErrServiceTypeChanged, existing.ServiceType, req.ServiceType)
		}
	}

	// 3. Assemble the aggregate with its slot configuration
	svc := req.toDomain()
	if req.Week != nil {
		svc.Slots = domain.SlotConfiguration{Type: req.ServiceType, Week: *req.Week}
	} else {
		defaults, err := slotconfig.DefaultConfiguration(req.ServiceType)
		if err != nil {
			return nil, fmt.Errorf("%w: Execute - default slots: %v", ErrInvalidInput, err)
		}
		svc.Slots = defaults
	}
	svc.Slots.Week.Normalize()

	// 4. Gate the save; publishing runs the full wizard validation
	if err := validateGates(svc, req.Publish); err != nil {
		return nil, err
	}

	// 5. Encode the canonical slot form before touching the database
	configuration, err := slotconfig.ToCanonicalForm(svc.Slots)
	if err != nil {
		uc.logger.Error("Execute: encode slots for shop=%d failed: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: Execute - encode slots: %v", ErrInternal, err)
	}

	// 6. Write the service and swap its slot record atomically
	var saved *domain.Service
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		if req.ServiceID == nil {
			saved, txErr = uc.serviceRepo.Create(ctx, svc)
		} else {
			saved, txErr = uc.serviceRepo.Update(ctx, svc)
		}
		if txErr != nil {
			return txErr
		}
		return uc.serviceRepo.ReplaceSlots(ctx, saved.ID, configuration)
	})
	if errors.Is(err, serviceRepo.ErrServiceNotFound) {
		return nil, fmt.Errorf("%w: Execute - service vanished during save", ErrServiceNotFound)
	}
	if err != nil {
		uc.logger.Error("Execute: save service for shop=%d failed: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: Execute - save service: %v", ErrInternal, err)
	}

	uc.logger.Info("Execute: saved service id=%d shop=%d type=%s publish=%t",
		saved.ID, saved.ShopID, saved.ServiceType, req.Publish)

	return &Response{
		ID:        saved.ID,
		CreatedAt: saved.CreatedAt,
		UpdatedAt: saved.UpdatedAt,
	}, nil
}
