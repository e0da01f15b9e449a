package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/pkg/psqlbuilder"
	"github.com/bookeasy/admin-service/pkg/txmanager"
)

// uniqueViolation is the postgres error code for unique constraint
// violations; the categories table has a unique (shop_id, slug) index.
const uniqueViolation = "23505"

// Repository persists service categories
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a category repository
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new category
func (r *Repository) Create(ctx context.Context, cat *domain.ServiceCategory) (*domain.ServiceCategory, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("categories").
		Columns("shop_id", "name", "slug").
		Values(cat.ShopID, cat.Name, cat.Slug).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cat.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cat.CreatedAt = createdAt.Time
	cat.UpdatedAt = updatedAt.Time

	return cat, nil
}

// Update replaces the name and slug of a category
func (r *Repository) Update(ctx context.Context, cat *domain.ServiceCategory) (*domain.ServiceCategory, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("categories").
		Set("name", cat.Name).
		Set("slug", cat.Slug).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cat.ID, "shop_id": cat.ShopID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	cat.CreatedAt = createdAt.Time
	cat.UpdatedAt = updatedAt.Time

	return cat, nil
}

// ListByShop returns all categories of a shop in name order
func (r *Repository) ListByShop(ctx context.Context, shopID int64) ([]*domain.ServiceCategory, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "shop_id", "name", "slug", "created_at", "updated_at").
		From("categories").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.ServiceCategory, 0)
	for rows.Next() {
		var cat domain.ServiceCategory
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(&cat.ID, &cat.ShopID, &cat.Name, &cat.Slug, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByShop - scan row: %v", ErrScanRow, err)
		}

		cat.CreatedAt = createdAt.Time
		cat.UpdatedAt = updatedAt.Time
		categories = append(categories, &cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByShop - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// Delete removes a category
func (r *Repository) Delete(ctx context.Context, shopID, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("categories").
		Where(squirrel.Eq{"id": id, "shop_id": shopID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
