package shops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bookeasy/admin-service/internal/domain"
	shopRepo "github.com/bookeasy/admin-service/internal/infra/storage/shop"
)

// Service resolves tenants from storefront domains
type Service struct {
	shopRepo ShopRepository
	logger   Logger
}

// NewService creates a shop service
func NewService(shopRepo ShopRepository, logger Logger) *Service {
	return &Service{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// ResolveByDomain finds the shop for a storefront domain, creating
// the record on first contact. Installation is implicit; the first
// authenticated admin request provisions the tenant.
func (s *Service) ResolveByDomain(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	shopDomain = strings.ToLower(strings.TrimSpace(shopDomain))
	if shopDomain == "" {
		return nil, ErrInvalidDomain
	}

	shop, err := s.shopRepo.GetByDomain(ctx, shopDomain)
	if err == nil {
		return shop, nil
	}
	if !errors.Is(err, shopRepo.ErrShopNotFound) {
		s.logger.Error("ResolveByDomain: failed to look up shop %q: %v", shopDomain, err)
		return nil, fmt.Errorf("%w: ResolveByDomain - repository error: %v", ErrInternal, err)
	}

	created, err := s.shopRepo.Create(ctx, shopDomain)
	if err != nil {
		s.logger.Error("ResolveByDomain: failed to create shop %q: %v", shopDomain, err)
		return nil, fmt.Errorf("%w: ResolveByDomain - create shop: %v", ErrInternal, err)
	}

	s.logger.Info("ResolveByDomain: provisioned new shop id=%d domain=%s", created.ID, created.Domain)
	return created, nil
}
