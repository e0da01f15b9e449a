package location

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/pkg/psqlbuilder"
	"github.com/bookeasy/admin-service/pkg/txmanager"
)

// Repository persists service delivery locations
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a location repository
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new location
func (r *Repository) Create(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	address, hours, err := encodeLocation(loc)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("locations").
		Columns("shop_id", "name", "phone", "email", "address", "working_hours").
		Values(loc.ShopID, loc.Name, loc.Phone, loc.Email, address, hours).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&loc.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	return loc, nil
}

// Update replaces the mutable fields of a location
func (r *Repository) Update(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	address, hours, err := encodeLocation(loc)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("locations").
		Set("name", loc.Name).
		Set("phone", loc.Phone).
		Set("email", loc.Email).
		Set("address", address).
		Set("working_hours", hours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": loc.ID, "shop_id": loc.ShopID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	return loc, nil
}

// GetByID fetches one location scoped to a shop
func (r *Repository) GetByID(ctx context.Context, shopID, id int64) (*domain.Location, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectLocations().
		Where(squirrel.Eq{"id": id, "shop_id": shopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	loc, err := scanLocation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID - %w", err)
	}

	return loc, nil
}

// ListByShop returns all locations of a shop in name order
func (r *Repository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Location, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectLocations().
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

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByShop - %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByShop - rows error: %v", ErrScanRow, err)
	}

	return locations, nil
}

// Delete removes a location
func (r *Repository) Delete(ctx context.Context, shopID, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("locations").
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
		return ErrLocationNotFound
	}

	return nil
}

func selectLocations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"shop_id",
		"name",
		"phone",
		"email",
		"address",
		"working_hours",
		"created_at",
		"updated_at",
	).From("locations")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocation(s rowScanner) (*domain.Location, error) {
	var loc domain.Location
	var address, hours []byte
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&loc.ID,
		&loc.ShopID,
		&loc.Name,
		&loc.Phone,
		&loc.Email,
		&address,
		&hours,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scan location: %v", ErrScanRow, err)
	}

	if len(address) > 0 {
		if err := json.Unmarshal(address, &loc.Address); err != nil {
			return nil, fmt.Errorf("%w: address: %v", ErrDecode, err)
		}
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &loc.WorkingHours); err != nil {
			return nil, fmt.Errorf("%w: working_hours: %v", ErrDecode, err)
		}
	}

	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	return &loc, nil
}

func encodeLocation(loc *domain.Location) ([]byte, []byte, error) {
	address, err := json.Marshal(loc.Address)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: address: %v", ErrEncode, err)
	}
	hours, err := json.Marshal(loc.WorkingHours)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: working_hours: %v", ErrEncode, err)
	}
	return address, hours, nil
}
