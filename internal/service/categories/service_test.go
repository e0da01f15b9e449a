package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
	categoryRepo "github.com/bookeasy/admin-service/internal/infra/storage/category"
	"github.com/bookeasy/admin-service/internal/service/categories/models"
	"github.com/bookeasy/admin-service/pkg/ptr"
)

type stubRepository struct {
	created   *domain.ServiceCategory
	createErr error
	updateErr error
}

func (s *stubRepository) Create(_ context.Context, cat *domain.ServiceCategory) (*domain.ServiceCategory, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	saved := *cat
	saved.ID = 11
	s.created = &saved
	return &saved, nil
}

func (s *stubRepository) Update(_ context.Context, cat *domain.ServiceCategory) (*domain.ServiceCategory, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	saved := *cat
	return &saved, nil
}

func (s *stubRepository) ListByShop(context.Context, int64) ([]*domain.ServiceCategory, error) {
	return nil, nil
}

func (s *stubRepository) Delete(context.Context, int64, int64) error {
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Hair & Beauty", "hair-beauty"},
		{"  Spa  ", "spa"},
		{"Déjà Vu", "d-j-vu"},
		{"already-slugged", "already-slugged"},
		{"UPPER CASE", "upper-case"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.name), "name=%q", tt.name)
	}
}

func TestSave_DerivesSlugFromName(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Save(context.Background(), 7, &models.SaveCategoryRequest{Name: "Hair & Beauty"})
	require.NoError(t, err)
	assert.Equal(t, "hair-beauty", resp.Slug)
}

func TestSave_KeepsExplicitSlug(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Save(context.Background(), 7, &models.SaveCategoryRequest{Name: "Hair", Slug: "custom"})
	require.NoError(t, err)
	assert.Equal(t, "custom", resp.Slug)
}

func TestSave_RequiresName(t *testing.T) {
	svc := NewService(&stubRepository{}, noopLogger{})

	_, err := svc.Save(context.Background(), 7, &models.SaveCategoryRequest{Name: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSave_DuplicateSlug(t *testing.T) {
	repo := &stubRepository{createErr: categoryRepo.ErrDuplicateSlug}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Save(context.Background(), 7, &models.SaveCategoryRequest{Name: "Spa"})
	require.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestSave_UpdateMissingCategory(t *testing.T) {
	repo := &stubRepository{updateErr: categoryRepo.ErrCategoryNotFound}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Save(context.Background(), 7, &models.SaveCategoryRequest{ID: ptr.To(int64(3)), Name: "Spa"})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}
