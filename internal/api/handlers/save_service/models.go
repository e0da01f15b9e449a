package save_service

import (
	"time"

	"github.com/bookeasy/admin-service/internal/domain"
	saveService "github.com/bookeasy/admin-service/internal/usecase/save_service"
)

// SaveServiceRequest is the full editable payload of a service. The
// same body serves create and update; the update endpoint takes the
// id from the URL.
type SaveServiceRequest struct {
	Name                  string                      `json:"name"`
	Category              *string                     `json:"category,omitempty"`
	Timezone              string                      `json:"timezone"`
	BookingType           string                      `json:"bookingType"`
	ServiceType           string                      `json:"serviceType"`
	ProductID             *string                     `json:"productId,omitempty"`
	VariantIDs            []string                    `json:"variantIds"`
	Duration              int                         `json:"duration"`
	DurationUnit          string                      `json:"durationUnit"`
	Week                  *domain.WeekSchedule        `json:"week,omitempty"`
	MultiDay              *domain.MultiDayConstraint  `json:"multiDay,omitempty"`
	Bundle                *domain.BundleBookingPolicy `json:"bundle,omitempty"`
	Capacity              domain.CapacityPolicy       `json:"capacity"`
	Cancellation          domain.CancellationPolicy   `json:"cancellation"`
	Reschedule            domain.ReschedulePolicy     `json:"reschedule"`
	Payment               *domain.PaymentPreference   `json:"payment,omitempty"`
	CustomerFields        []domain.CustomerField      `json:"customerFields"`
	LocationIDs           []int64                     `json:"locationIds"`
	StaffIDs              []int64                     `json:"staffIds"`
	LocationType          *domain.LocationType        `json:"locationType,omitempty"`
	HideLocationSelection bool                        `json:"hideLocationSelection"`
	HideStaffSelection    bool                        `json:"hideStaffSelection"`
	LeadTimeValue         int                         `json:"leadTimeValue"`
	LeadTimeUnit          string                      `json:"leadTimeUnit"`
	VisibilityDays        *int                        `json:"visibilityDays,omitempty"`
	MaxQuantities         *int                        `json:"maxQuantities,omitempty"`
	NotificationEmail     *string                     `json:"notificationEmail,omitempty"`
	Publish               bool                        `json:"publish"`
}

// SaveServiceResponse reports the persisted identity of the service
type SaveServiceResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP payload to the use case model.
// serviceID is nil on create.
func (r *SaveServiceRequest) ToUseCaseRequest(shopID int64, serviceID *int64) *saveService.Request {
	return &saveService.Request{
		ShopID:                shopID,
		ServiceID:             serviceID,
		Publish:               r.Publish,
		Name:                  r.Name,
		Category:              r.Category,
		Timezone:              r.Timezone,
		BookingType:           domain.BookingType(r.BookingType),
		ServiceType:           domain.ServiceType(r.ServiceType),
		ProductID:             r.ProductID,
		VariantIDs:            r.VariantIDs,
		Duration:              r.Duration,
		DurationUnit:          domain.DurationUnit(r.DurationUnit),
		Week:                  r.Week,
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
		LeadTimeUnit:          domain.DurationUnit(r.LeadTimeUnit),
		VisibilityDays:        r.VisibilityDays,
		MaxQuantities:         r.MaxQuantities,
		NotificationEmail:     r.NotificationEmail,
	}
}

// FromUseCaseResponse converts the use case result to the HTTP response
func FromUseCaseResponse(resp *saveService.Response) *SaveServiceResponse {
	return &SaveServiceResponse{
		ID:        resp.ID,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
