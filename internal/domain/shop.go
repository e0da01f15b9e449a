package domain

import "time"

// Shop is a tenant of the platform. Every admin request is scoped to
// exactly one shop, resolved from the storefront domain.
type Shop struct {
	ID        int64
	Domain    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GeneralSettings holds shop-wide presentation and notification
// preferences. One row per shop; saves upsert.
type GeneralSettings struct {
	ID     int64
	ShopID int64

	CompanyName      string
	Timezone         string
	WeekStart        Weekday
	DateFormat       string
	TimeFormat       string
	RefundOnCancel   bool
	AdditionalEmails []string

	SenderEmail               *string
	AdminNotificationEmail    *string
	EmailOnNewBooking         bool
	EmailOnCancelledBooking   bool
	EmailOnRescheduledBooking bool

	UpdatedAt time.Time
}
