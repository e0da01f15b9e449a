package staff

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

// CreateGroup inserts a new staff group
func (r *Repository) CreateGroup(ctx context.Context, group *domain.StaffGroup) (*domain.StaffGroup, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	memberIDs, err := encodeMemberIDs(group.StaffIDs)
	if err != nil {
		return nil, fmt.Errorf("CreateGroup - %w", err)
	}

	query, args, err := psqlbuilder.Insert("staff_groups").
		Columns("shop_id", "name", "staff_ids").
		Values(group.ShopID, group.Name, memberIDs).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateGroup - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&group.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateGroup - execute insert: %v", ErrExecQuery, err)
	}

	group.CreatedAt = createdAt.Time
	group.UpdatedAt = updatedAt.Time

	return group, nil
}

// UpdateGroup replaces the name and membership of a staff group
func (r *Repository) UpdateGroup(ctx context.Context, group *domain.StaffGroup) (*domain.StaffGroup, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	memberIDs, err := encodeMemberIDs(group.StaffIDs)
	if err != nil {
		return nil, fmt.Errorf("UpdateGroup - %w", err)
	}

	query, args, err := psqlbuilder.Update("staff_groups").
		Set("name", group.Name).
		Set("staff_ids", memberIDs).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": group.ID, "shop_id": group.ShopID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateGroup - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateGroup - execute update: %v", ErrExecQuery, err)
	}

	group.CreatedAt = createdAt.Time
	group.UpdatedAt = updatedAt.Time

	return group, nil
}

// ListGroupsByShop returns all staff groups of a shop in name order
func (r *Repository) ListGroupsByShop(ctx context.Context, shopID int64) ([]*domain.StaffGroup, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "shop_id", "name", "staff_ids", "created_at", "updated_at").
		From("staff_groups").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGroupsByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGroupsByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	groups := make([]*domain.StaffGroup, 0)
	for rows.Next() {
		var group domain.StaffGroup
		var memberIDs []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(&group.ID, &group.ShopID, &group.Name, &memberIDs, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListGroupsByShop - scan row: %v", ErrScanRow, err)
		}

		if len(memberIDs) > 0 {
			if err := json.Unmarshal(memberIDs, &group.StaffIDs); err != nil {
				return nil, fmt.Errorf("%w: ListGroupsByShop - staff_ids: %v", ErrDecode, err)
			}
		}

		group.CreatedAt = createdAt.Time
		group.UpdatedAt = updatedAt.Time
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListGroupsByShop - rows error: %v", ErrScanRow, err)
	}

	return groups, nil
}

// DeleteGroup removes a staff group
func (r *Repository) DeleteGroup(ctx context.Context, shopID, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_groups").
		Where(squirrel.Eq{"id": id, "shop_id": shopID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteGroup - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteGroup - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteGroup - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

func encodeMemberIDs(ids []int64) ([]byte, error) {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: staff_ids: %v", ErrEncode, err)
	}
	return raw, nil
}
