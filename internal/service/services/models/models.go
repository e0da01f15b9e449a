package models

import (
	"encoding/json"
	"time"

	"github.com/bookeasy/admin-service/internal/bookingpolicy"
	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/internal/integrations/productcatalog"
)

// ServiceResponse is the full editable representation of a service,
// slots expanded into the weekly editing model.
type ServiceResponse struct {
	ID                    int64                       `json:"id"`
	Name                  string                      `json:"name"`
	Category              *string                     `json:"category,omitempty"`
	Timezone              string                      `json:"timezone"`
	BookingType           domain.BookingType          `json:"bookingType"`
	ServiceType           domain.ServiceType          `json:"serviceType"`
	ProductID             *string                     `json:"productId,omitempty"`
	VariantIDs            []string                    `json:"variantIds"`
	Duration              int                         `json:"duration"`
	DurationUnit          domain.DurationUnit         `json:"durationUnit"`
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
	LeadTimeUnit          domain.DurationUnit         `json:"leadTimeUnit"`
	VisibilityDays        *int                        `json:"visibilityDays,omitempty"`
	MaxQuantities         *int                        `json:"maxQuantities,omitempty"`
	NotificationEmail     *string                     `json:"notificationEmail,omitempty"`
	CreatedAt             time.Time                   `json:"createdAt"`
	UpdatedAt             time.Time                   `json:"updatedAt"`
}

// FromDomain maps a service aggregate to its response shape. week is
// optional; list responses skip the slot expansion.
func FromDomain(svc *domain.Service, week *domain.WeekSchedule) *ServiceResponse {
	return &ServiceResponse{
		ID:                    svc.ID,
		Name:                  svc.Name,
		Category:              svc.Category,
		Timezone:              svc.Timezone,
		BookingType:           svc.BookingType,
		ServiceType:           svc.ServiceType,
		ProductID:             svc.ProductID,
		VariantIDs:            svc.VariantIDs,
		Duration:              svc.Duration,
		DurationUnit:          svc.DurationUnit,
		Week:                  week,
		MultiDay:              svc.MultiDay,
		Bundle:                svc.Bundle,
		Capacity:              svc.Capacity,
		Cancellation:          svc.Cancellation,
		Reschedule:            svc.Reschedule,
		Payment:               svc.Payment,
		CustomerFields:        svc.CustomerFields,
		LocationIDs:           svc.LocationIDs,
		StaffIDs:              svc.StaffIDs,
		LocationType:          svc.LocationType,
		HideLocationSelection: svc.HideLocationSelection,
		HideStaffSelection:    svc.HideStaffSelection,
		LeadTimeValue:         svc.LeadTimeValue,
		LeadTimeUnit:          svc.LeadTimeUnit,
		VisibilityDays:        svc.VisibilityDays,
		MaxQuantities:         svc.MaxQuantities,
		NotificationEmail:     svc.NotificationEmail,
		CreatedAt:             svc.CreatedAt,
		UpdatedAt:             svc.UpdatedAt,
	}
}

// ServiceSummary is the list-view shape of a service
type ServiceSummary struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Category    *string            `json:"category,omitempty"`
	ServiceType domain.ServiceType `json:"serviceType"`
	ProductID   *string            `json:"productId,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// SummaryFromDomain maps a service aggregate to its list shape
func SummaryFromDomain(svc *domain.Service) *ServiceSummary {
	return &ServiceSummary{
		ID:          svc.ID,
		Name:        svc.Name,
		Category:    svc.Category,
		ServiceType: svc.ServiceType,
		ProductID:   svc.ProductID,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

// BookingDataResponse is the hand-off record the booking engine
// consumes: canonical slots, resolved policy, intake schema, and the
// linked resource ids.
type BookingDataResponse struct {
	ServiceID         int64                                `json:"serviceId"`
	Name              string                               `json:"name"`
	Timezone          string                               `json:"timezone"`
	ServiceType       domain.ServiceType                   `json:"serviceType"`
	Duration          int                                  `json:"duration"`
	DurationUnit      domain.DurationUnit                  `json:"durationUnit"`
	SlotConfiguration json.RawMessage                      `json:"slotConfiguration"`
	Policy            bookingpolicy.ResolvedBookingPolicy  `json:"policy"`
	CustomerFields    []domain.CustomerField               `json:"customerFields"`
	LocationIDs       []int64                              `json:"locationIds"`
	StaffIDs          []int64                              `json:"staffIds"`
	Product           *productcatalog.Product              `json:"product,omitempty"`
}
