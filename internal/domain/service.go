package domain

import (
	"errors"
	"time"
)

// ServiceType determines the temporal shape of a bookable offering.
// It is fixed at service creation; changing it on a service with
// stored slots invalidates the slot data, so updates reject it.
type ServiceType string

const (
	ServiceTypeRegular  ServiceType = "regular"
	ServiceTypeFullDay  ServiceType = "full-day"
	ServiceTypeMultiDay ServiceType = "multi-day"
)

// ErrUnknownServiceType is returned for a service type outside the
// closed enum. It indicates a corrupted or unsupported record rather
// than a user mistake.
var ErrUnknownServiceType = errors.New("domain: unknown service type")

// ParseServiceType validates a raw service type value
func ParseServiceType(raw string) (ServiceType, error) {
	switch ServiceType(raw) {
	case ServiceTypeRegular, ServiceTypeFullDay, ServiceTypeMultiDay:
		return ServiceType(raw), nil
	default:
		return "", ErrUnknownServiceType
	}
}

// IsValid reports whether the type is a member of the closed enum
func (t ServiceType) IsValid() bool {
	_, err := ParseServiceType(string(t))
	return err == nil
}

// BookingType distinguishes single-slot bookings from bundle bookings
type BookingType string

const (
	BookingTypeGeneral BookingType = "general"
	BookingTypeBundle  BookingType = "bundle"
)

// LocationType tells the booking widget whether the service is
// delivered online, on-site, or both.
type LocationType string

const (
	LocationTypeOnline  LocationType = "online"
	LocationTypeOffline LocationType = "offline"
)

// Service is the aggregate root for a bookable offering. Each tab of
// the admin form edits an independent slice of it; saves always
// replace the full record.
type Service struct {
	ID     int64
	ShopID int64

	Name        string
	Category    *string
	Timezone    string
	BookingType BookingType
	ServiceType ServiceType

	// External product catalog reference (opaque identifiers)
	ProductID  *string
	VariantIDs []string

	Duration     int
	DurationUnit DurationUnit

	Slots SlotConfiguration

	// MultiDay is set only for multi-day services
	MultiDay *MultiDayConstraint

	// Bundle is meaningful only for regular services
	Bundle *BundleBookingPolicy

	Capacity     CapacityPolicy
	Cancellation CancellationPolicy
	Reschedule   ReschedulePolicy
	Payment      *PaymentPreference

	CustomerFields []CustomerField

	LocationIDs           []int64
	StaffIDs              []int64
	LocationType          *LocationType
	HideLocationSelection bool
	HideStaffSelection    bool

	LeadTimeValue     int
	LeadTimeUnit      DurationUnit
	VisibilityDays    *int
	MaxQuantities     *int
	NotificationEmail *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMultiDay returns true for multi-day services
func (s *Service) IsMultiDay() bool {
	return s.ServiceType == ServiceTypeMultiDay
}

// SupportsBundles returns true if bundle booking applies to this
// service type at all.
func (s *Service) SupportsBundles() bool {
	return s.ServiceType == ServiceTypeRegular
}

// HasProductLink returns true if a catalog product is linked
func (s *Service) HasProductLink() bool {
	return s.ProductID != nil && *s.ProductID != ""
}
