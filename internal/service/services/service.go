package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookeasy/admin-service/internal/bookingpolicy"
	"github.com/bookeasy/admin-service/internal/customerfields"
	"github.com/bookeasy/admin-service/internal/domain"
	serviceRepo "github.com/bookeasy/admin-service/internal/infra/storage/service"
	"github.com/bookeasy/admin-service/internal/integrations/productcatalog"
	"github.com/bookeasy/admin-service/internal/service/services/models"
	"github.com/bookeasy/admin-service/internal/slotconfig"
)

// Service reads service aggregates and assembles the booking-engine
// hand-off record. Writes go through the save use case.
type Service struct {
	serviceRepo ServiceRepository
	catalog     CatalogClient
	logger      Logger
}

// NewService creates a services read service
func NewService(serviceRepo ServiceRepository, catalog CatalogClient, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// Get returns one service with its slots expanded into the weekly
// editing model.
func (s *Service) Get(ctx context.Context, shopID, serviceID int64) (*models.ServiceResponse, error) {
	svc, err := s.getDomain(ctx, shopID, serviceID, "Get")
	if err != nil {
		return nil, err
	}

	week, err := s.loadWeek(ctx, svc)
	if err != nil {
		return nil, err
	}

	return models.FromDomain(svc, week), nil
}

// List returns all services of a shop as summaries
func (s *Service) List(ctx context.Context, shopID int64) ([]*models.ServiceSummary, error) {
	list, err := s.serviceRepo.ListByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("List: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	summaries := make([]*models.ServiceSummary, 0, len(list))
	for _, svc := range list {
		summaries = append(summaries, models.SummaryFromDomain(svc))
	}
	return summaries, nil
}

// Delete removes a service and its slot record
func (s *Service) Delete(ctx context.Context, shopID, serviceID int64) error {
	err := s.serviceRepo.Delete(ctx, shopID, serviceID)
	if errors.Is(err, serviceRepo.ErrServiceNotFound) {
		s.logger.Warn("Delete: service id=%d not found in shop=%d", serviceID, shopID)
		return ErrServiceNotFound
	}
	if err != nil {
		s.logger.Error("Delete: repository error for service=%d: %v", serviceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed service id=%d from shop=%d", serviceID, shopID)
	return nil
}

// BookingData assembles the full hand-off record for the booking
// engine: canonical slot configuration, resolved policy, intake
// schema, and linked resource ids. A catalog outage only drops the
// product preview. The engine knows only the service id, so the
// lookup is not shop-scoped.
func (s *Service) BookingData(ctx context.Context, serviceID int64) (*models.BookingDataResponse, error) {
	// 1. Load the aggregate
	svc, err := s.serviceRepo.FindByID(ctx, serviceID)
	if errors.Is(err, serviceRepo.ErrServiceNotFound) {
		s.logger.Warn("BookingData: service id=%d not found", serviceID)
		return nil, ErrServiceNotFound
	}
	if err != nil {
		s.logger.Error("BookingData: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: BookingData - repository error: %v", ErrInternal, err)
	}

	// 2. Load the canonical slot record, seeding defaults for
	// services saved before any slot edits
	raw, err := s.serviceRepo.GetSlots(ctx, serviceID)
	if errors.Is(err, serviceRepo.ErrSlotsNotFound) {
		cfg, defErr := slotconfig.DefaultConfiguration(svc.ServiceType)
		if defErr != nil {
			return nil, fmt.Errorf("%w: BookingData - default slots: %v", ErrInternal, defErr)
		}
		raw, defErr = slotconfig.ToCanonicalForm(cfg)
		if defErr != nil {
			return nil, fmt.Errorf("%w: BookingData - encode default slots: %v", ErrInternal, defErr)
		}
	} else if err != nil {
		s.logger.Error("BookingData: failed to load slots for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: BookingData - load slots: %v", ErrInternal, err)
	}

	// 3. Resolve the derived policy
	policy := bookingpolicy.Resolve(svc)

	// 4. Intake schema falls back to the built-in fields
	fields := svc.CustomerFields
	if len(fields) == 0 {
		fields = customerfields.DefaultFields()
	}

	resp := &models.BookingDataResponse{
		ServiceID:         svc.ID,
		Name:              svc.Name,
		Timezone:          svc.Timezone,
		ServiceType:       svc.ServiceType,
		Duration:          svc.Duration,
		DurationUnit:      svc.DurationUnit,
		SlotConfiguration: raw,
		Policy:            policy,
		CustomerFields:    fields,
		LocationIDs:       svc.LocationIDs,
		StaffIDs:          svc.StaffIDs,
	}

	// 5. Product preview, tolerating catalog outages
	if svc.HasProductLink() {
		product, err := s.catalog.GetProductWithGracefulDegradation(ctx, *svc.ProductID)
		if err != nil && !errors.Is(err, productcatalog.ErrServiceDegraded) && !errors.Is(err, productcatalog.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: BookingData - catalog: %v", ErrInternal, err)
		}
		resp.Product = product
	}

	return resp, nil
}

func (s *Service) getDomain(ctx context.Context, shopID, serviceID int64, op string) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, shopID, serviceID)
	if errors.Is(err, serviceRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found in shop=%d", op, serviceID, shopID)
		return nil, ErrServiceNotFound
	}
	if err != nil {
		s.logger.Error("%s: repository error for service=%d: %v", op, serviceID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return svc, nil
}

func (s *Service) loadWeek(ctx context.Context, svc *domain.Service) (*domain.WeekSchedule, error) {
	raw, err := s.serviceRepo.GetSlots(ctx, svc.ID)
	if errors.Is(err, serviceRepo.ErrSlotsNotFound) {
		cfg, defErr := slotconfig.DefaultConfiguration(svc.ServiceType)
		if defErr != nil {
			return nil, fmt.Errorf("%w: loadWeek - default slots: %v", ErrInternal, defErr)
		}
		return &cfg.Week, nil
	}
	if err != nil {
		s.logger.Error("loadWeek: failed to load slots for service=%d: %v", svc.ID, err)
		return nil, fmt.Errorf("%w: loadWeek - load slots: %v", ErrInternal, err)
	}

	cfg, err := slotconfig.FromCanonicalForm(svc.ServiceType, raw)
	if err != nil {
		s.logger.Error("loadWeek: corrupt slot record for service=%d: %v", svc.ID, err)
		return nil, fmt.Errorf("%w: loadWeek - decode slots: %v", ErrInternal, err)
	}
	return &cfg.Week, nil
}
