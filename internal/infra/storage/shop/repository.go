package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/pkg/psqlbuilder"
	"github.com/bookeasy/admin-service/pkg/txmanager"
)

// Repository persists tenant records
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a shop repository
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByDomain looks a shop up by its storefront domain
func (r *Repository) GetByDomain(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "domain", "created_at", "updated_at").
		From("shops").
		Where(squirrel.Eq{"domain": shopDomain}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDomain - build select query: %v", ErrBuildQuery, err)
	}

	var shop domain.Shop
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&shop.ID,
		&shop.Domain,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDomain - scan shop: %v", ErrScanRow, err)
	}

	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time

	return &shop, nil
}

// Create inserts a new shop for the given storefront domain
func (r *Repository) Create(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shops").
		Columns("domain").
		Values(shopDomain).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	shop := domain.Shop{Domain: shopDomain}
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&shop.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time

	return &shop, nil
}
