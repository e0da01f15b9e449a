package service

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

// Repository persists service aggregates and their slot records
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a service repository
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new service and returns it with generated fields
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	enc, err := encodeService(svc)
	if err != nil {
		return nil, fmt.Errorf("Create - %w", err)
	}

	query, args, err := psqlbuilder.Insert("services").
		Columns(serviceColumns[1 : len(serviceColumns)-2]...).
		Values(
			svc.ShopID,
			svc.Name,
			svc.Category,
			svc.Timezone,
			svc.BookingType,
			svc.ServiceType,
			svc.ProductID,
			enc.variantIDs,
			svc.Duration,
			svc.DurationUnit,
			enc.multiDay,
			enc.bundle,
			enc.capacity,
			enc.cancellation,
			enc.reschedule,
			enc.payment,
			enc.customerFields,
			enc.locationIDs,
			enc.staffIDs,
			svc.LocationType,
			svc.HideLocationSelection,
			svc.HideStaffSelection,
			svc.LeadTimeValue,
			svc.LeadTimeUnit,
			svc.VisibilityDays,
			svc.MaxQuantities,
			svc.NotificationEmail,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// GetByID fetches one service scoped to a shop
func (r *Repository) GetByID(ctx context.Context, shopID, id int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id, "shop_id": shopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rec row
	err = executor.QueryRowContext(ctx, query, args...).Scan(rec.scanTargets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	svc, err := rec.toDomain()
	if err != nil {
		return nil, fmt.Errorf("GetByID - %w", err)
	}
	return svc, nil
}

// FindByID fetches one service regardless of shop. The booking-data
// hand-off is keyed by service id alone.
func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	var rec row
	err = executor.QueryRowContext(ctx, query, args...).Scan(rec.scanTargets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - scan service: %v", ErrScanRow, err)
	}

	svc, err := rec.toDomain()
	if err != nil {
		return nil, fmt.Errorf("FindByID - %w", err)
	}
	return svc, nil
}

// ListByShop returns all services of a shop, newest first
func (r *Repository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var rec row
		if err := rows.Scan(rec.scanTargets()...); err != nil {
			return nil, fmt.Errorf("%w: ListByShop - scan row: %v", ErrScanRow, err)
		}
		svc, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("ListByShop - %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByShop - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update replaces all mutable fields of a service. The service type
// is deliberately not part of the SET list; it is fixed at creation.
func (r *Repository) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	enc, err := encodeService(svc)
	if err != nil {
		return nil, fmt.Errorf("Update - %w", err)
	}

	query, args, err := psqlbuilder.Update("services").
		Set("name", svc.Name).
		Set("category", svc.Category).
		Set("timezone", svc.Timezone).
		Set("booking_type", svc.BookingType).
		Set("product_id", svc.ProductID).
		Set("variant_ids", enc.variantIDs).
		Set("duration", svc.Duration).
		Set("duration_unit", svc.DurationUnit).
		Set("multi_day", enc.multiDay).
		Set("bundle", enc.bundle).
		Set("capacity", enc.capacity).
		Set("cancellation", enc.cancellation).
		Set("reschedule", enc.reschedule).
		Set("payment", enc.payment).
		Set("customer_fields", enc.customerFields).
		Set("location_ids", enc.locationIDs).
		Set("staff_ids", enc.staffIDs).
		Set("location_type", svc.LocationType).
		Set("hide_location_selection", svc.HideLocationSelection).
		Set("hide_staff_selection", svc.HideStaffSelection).
		Set("lead_time_value", svc.LeadTimeValue).
		Set("lead_time_unit", svc.LeadTimeUnit).
		Set("visibility_days", svc.VisibilityDays).
		Set("max_quantities", svc.MaxQuantities).
		Set("notification_email", svc.NotificationEmail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": svc.ID, "shop_id": svc.ShopID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// Delete removes a service. Slot records go with it via ON DELETE
// CASCADE on the service_slots table.
func (r *Repository) Delete(ctx context.Context, shopID, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
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
		return ErrServiceNotFound
	}

	return nil
}

// GetSlots returns the canonical slot record of a service
func (r *Repository) GetSlots(ctx context.Context, serviceID int64) (json.RawMessage, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("configuration").
		From("service_slots").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlots - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlots - scan configuration: %v", ErrScanRow, err)
	}

	return raw, nil
}

// ReplaceSlots swaps the slot record of a service. The old record is
// deleted and a fresh one inserted; callers run this inside a
// transaction so readers never observe the gap.
func (r *Repository) ReplaceSlots(ctx context.Context, serviceID int64, configuration json.RawMessage) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	delQuery, delArgs, err := psqlbuilder.Delete("service_slots").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSlots - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceSlots - execute delete: %v", ErrExecQuery, err)
	}

	insQuery, insArgs, err := psqlbuilder.Insert("service_slots").
		Columns("service_id", "configuration").
		Values(serviceID, []byte(configuration)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSlots - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insQuery, insArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceSlots - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
