package shops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
	shopRepo "github.com/bookeasy/admin-service/internal/infra/storage/shop"
)

type stubRepository struct {
	existing      *domain.Shop
	createdDomain string
}

func (s *stubRepository) GetByDomain(_ context.Context, shopDomain string) (*domain.Shop, error) {
	if s.existing != nil && s.existing.Domain == shopDomain {
		return s.existing, nil
	}
	return nil, shopRepo.ErrShopNotFound
}

func (s *stubRepository) Create(_ context.Context, shopDomain string) (*domain.Shop, error) {
	s.createdDomain = shopDomain
	return &domain.Shop{ID: 2, Domain: shopDomain}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestResolveByDomain_Existing(t *testing.T) {
	repo := &stubRepository{existing: &domain.Shop{ID: 1, Domain: "acme.example.com"}}
	svc := NewService(repo, noopLogger{})

	shop, err := svc.ResolveByDomain(context.Background(), "acme.example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), shop.ID)
	assert.Empty(t, repo.createdDomain)
}

func TestResolveByDomain_ProvisionsNewShop(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo, noopLogger{})

	shop, err := svc.ResolveByDomain(context.Background(), "new.example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), shop.ID)
	assert.Equal(t, "new.example.com", repo.createdDomain)
}

func TestResolveByDomain_NormalizesDomain(t *testing.T) {
	repo := &stubRepository{existing: &domain.Shop{ID: 1, Domain: "acme.example.com"}}
	svc := NewService(repo, noopLogger{})

	shop, err := svc.ResolveByDomain(context.Background(), "  ACME.Example.Com ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), shop.ID)
}

func TestResolveByDomain_BlankDomain(t *testing.T) {
	svc := NewService(&stubRepository{}, noopLogger{})

	_, err := svc.ResolveByDomain(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidDomain)
}
