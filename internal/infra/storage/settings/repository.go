package settings

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

// Repository persists shop-wide settings. One row per shop, written
// with upsert semantics.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a settings repository
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

var settingsColumns = []string{
	"id",
	"shop_id",
	"company_name",
	"timezone",
	"week_start",
	"date_format",
	"time_format",
	"refund_on_cancel",
	"additional_emails",
	"sender_email",
	"admin_notification_email",
	"email_on_new_booking",
	"email_on_cancelled_booking",
	"email_on_rescheduled_booking",
	"updated_at",
}

// GetByShop fetches the settings row of a shop
func (r *Repository) GetByShop(ctx context.Context, shopID int64) (*domain.GeneralSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("general_settings").
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.GeneralSettings
	var additionalEmails []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ShopID,
		&s.CompanyName,
		&s.Timezone,
		&s.WeekStart,
		&s.DateFormat,
		&s.TimeFormat,
		&s.RefundOnCancel,
		&additionalEmails,
		&s.SenderEmail,
		&s.AdminNotificationEmail,
		&s.EmailOnNewBooking,
		&s.EmailOnCancelledBooking,
		&s.EmailOnRescheduledBooking,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - scan settings: %v", ErrScanRow, err)
	}

	if len(additionalEmails) > 0 {
		if err := json.Unmarshal(additionalEmails, &s.AdditionalEmails); err != nil {
			return nil, fmt.Errorf("%w: GetByShop - additional_emails: %v", ErrDecode, err)
		}
	}
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert writes the settings row of a shop, creating it on first save
func (r *Repository) Upsert(ctx context.Context, s *domain.GeneralSettings) (*domain.GeneralSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	emails := s.AdditionalEmails
	if emails == nil {
		emails = []string{}
	}
	additionalEmails, err := json.Marshal(emails)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - additional_emails: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("general_settings").
		Columns(
			"shop_id",
			"company_name",
			"timezone",
			"week_start",
			"date_format",
			"time_format",
			"refund_on_cancel",
			"additional_emails",
			"sender_email",
			"admin_notification_email",
			"email_on_new_booking",
			"email_on_cancelled_booking",
			"email_on_rescheduled_booking",
		).
		Values(
			s.ShopID,
			s.CompanyName,
			s.Timezone,
			s.WeekStart,
			s.DateFormat,
			s.TimeFormat,
			s.RefundOnCancel,
			additionalEmails,
			s.SenderEmail,
			s.AdminNotificationEmail,
			s.EmailOnNewBooking,
			s.EmailOnCancelledBooking,
			s.EmailOnRescheduledBooking,
		).
		Suffix(`ON CONFLICT (shop_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			timezone = EXCLUDED.timezone,
			week_start = EXCLUDED.week_start,
			date_format = EXCLUDED.date_format,
			time_format = EXCLUDED.time_format,
			refund_on_cancel = EXCLUDED.refund_on_cancel,
			additional_emails = EXCLUDED.additional_emails,
			sender_email = EXCLUDED.sender_email,
			admin_notification_email = EXCLUDED.admin_notification_email,
			email_on_new_booking = EXCLUDED.email_on_new_booking,
			email_on_cancelled_booking = EXCLUDED.email_on_cancelled_booking,
			email_on_rescheduled_booking = EXCLUDED.email_on_rescheduled_booking,
			updated_at = NOW()
			RETURNING id, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time

	return s, nil
}
