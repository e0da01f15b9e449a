package save_service

import (
	"time"

	"github.com/bookeasy/admin-service/internal/domain"
)

// Request is the full editable payload of a service. ServiceID is nil
// on create. Saves always replace the whole record; there is no
// partial patch.
type Request struct {
	ShopID    int64
	ServiceID *int64

	// Publish runs the full wizard validation instead of the minimal
	// draft gate.
	Publish bool

	Name         string
	Category     *string
	Timezone     string
	BookingType  domain.BookingType
	ServiceType  domain.ServiceType
	ProductID    *string
	VariantIDs   []string
	Duration     int
	DurationUnit domain.DurationUnit

	// Week is the editing model for all service types; nil keeps the
	// type's default configuration.
	Week *domain.WeekSchedule

	MultiDay     *domain.MultiDayConstraint
	Bundle       *domain.BundleBookingPolicy
	Capacity     domain.CapacityPolicy
	Cancellation domain.CancellationPolicy
	Reschedule   domain.ReschedulePolicy
	Payment      *domain.PaymentPreference

	CustomerFields []domain.CustomerField

	LocationIDs           []int64
	StaffIDs              []int64
	LocationType          *domain.LocationType
	HideLocationSelection bool
	HideStaffSelection    bool

	LeadTimeValue     int
	LeadTimeUnit      domain.DurationUnit
	VisibilityDays    *int
	MaxQuantities     *int
	NotificationEmail *string
}

// Response reports the persisted identity of the saved service
type Response struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// toDomain assembles the aggregate the request describes
func (r *Request) toDomain() *domain.Service {
	svc := &domain.Service{
		ShopID:                r.ShopID,
		Name:                  r.Name,
		Category:              r.Category,
		Timezone:              r.Timezone,
		BookingType:           r.BookingType,
		ServiceType:           r.ServiceType,
		ProductID:             r.ProductID,
		VariantIDs:            r.VariantIDs,
		Duration:              r.Duration,
		DurationUnit:          r.DurationUnit,
		MultiDay:              r.MultiDay,
		Bundle:                r.Bundle,
		Capacity:              r.Capacity,
		Cancellation:          r.Cancellation,
		Reschedule:            r.Reschedule,
		Payment:               r.Payment,
		CustomerFields:        r.CustomerFields,
		LocationIDs:           r.LocationIDs,
		StaffIDs:              r.StaffIDs,
		LocationType:          r.LocationType,
		HideLocationSelection: r.HideLocationSelection,
		HideStaffSelection:    r.HideStaffSelection,
		LeadTimeValue:         r.LeadTimeValue,
		LeadTimeUnit:          r.LeadTimeUnit,
		VisibilityDays:        r.VisibilityDays,
		MaxQuantities:         r.MaxQuantities,
		NotificationEmail:     r.NotificationEmail,
	}
	if r.ServiceID != nil {
		svc.ID = *r.ServiceID
	}
	return svc
}
