package bookingpolicy

import (
	"fmt"
	"strings"

	"github.com/bookeasy/admin-service/internal/domain"
)

// PolicyDecision is an allow/deny outcome with its display label
type PolicyDecision struct {
	Allowed bool   `json:"allowed"`
	Label   string `json:"label"`
}

// ResolvedBookingPolicy is the single policy record handed to the
// booking engine and shown on the review screen. It is derived from
// the service's independently edited fields and never stored.
type ResolvedBookingPolicy struct {
	LeadTime         string                      `json:"leadTime"`
	VisibilityWindow string                      `json:"visibilityWindow"`
	Cancellation     PolicyDecision              `json:"cancellation"`
	Reschedule       PolicyDecision              `json:"reschedule"`
	Payment          string                      `json:"payment"`
	Capacity         *int                        `json:"maxConcurrentBookingsPerSlot"`
	Bundle           *domain.BundleBookingPolicy `json:"bundle,omitempty"`
	MultiDay         *domain.MultiDayConstraint  `json:"multiDay,omitempty"`
}

// Resolve computes the full policy for a service. Pure; every input
// has a defined default, so there are no error conditions.
func Resolve(s *domain.Service) ResolvedBookingPolicy {
	policy := ResolvedBookingPolicy{
		LeadTime:         ResolveLeadTime(s.LeadTimeValue, s.LeadTimeUnit),
		VisibilityWindow: ResolveVisibilityWindow(s.VisibilityDays),
		Cancellation:     ResolveCancellation(s.Cancellation),
		Reschedule:       ResolveReschedule(s.Reschedule),
		Payment:          ResolvePayment(s.Payment),
		Capacity:         s.Capacity.MaxConcurrentBookingsPerSlot,
	}

	if s.SupportsBundles() {
		policy.Bundle = s.Bundle
	}
	if s.IsMultiDay() {
		policy.MultiDay = s.MultiDay
	}

	return policy
}

// ResolveLeadTime renders the minimum booking notice. Zero means
// bookings may be placed right up to the slot.
func ResolveLeadTime(notice int, unit domain.DurationUnit) string {
	if notice <= 0 {
		return "No lead time"
	}
	if unit == "" {
		unit = domain.UnitMinutes
	}
	return fmt.Sprintf("%d %s", notice, strings.ToLower(string(unit)))
}

// ResolveVisibilityWindow renders how far ahead slots are offered,
// falling back to the platform default when unset.
func ResolveVisibilityWindow(days *int) string {
	d := domain.DefaultVisibilityDays
	if days != nil {
		d = *days
	}
	return fmt.Sprintf("%d days ahead", d)
}

// ResolveCancellation renders the cancellation rule with a
// unit-correct cutoff abbreviation.
func ResolveCancellation(p domain.CancellationPolicy) PolicyDecision {
	if !p.Allowed {
		return PolicyDecision{Allowed: false, Label: "Not allowed"}
	}

	cutoff := domain.DefaultCancellationCutoff
	if p.CutoffValue != nil {
		cutoff = *p.CutoffValue
	}
	abbrev := "h"
	if p.CutoffUnit != nil && *p.CutoffUnit == domain.CutoffDays {
		abbrev = "d"
	}
	return PolicyDecision{Allowed: true, Label: fmt.Sprintf("Allowed (%d%s cutoff)", cutoff, abbrev)}
}

// ResolveReschedule renders the reschedule rule. The cutoff is a
// configurable hour count defaulting to 24.
func ResolveReschedule(p domain.ReschedulePolicy) PolicyDecision {
	if !p.Allowed {
		return PolicyDecision{Allowed: false, Label: "Not allowed"}
	}

	cutoff := p.CutoffHours
	if cutoff <= 0 {
		cutoff = domain.DefaultRescheduleCutoff
	}
	return PolicyDecision{Allowed: true, Label: fmt.Sprintf("Allowed (%dh cutoff)", cutoff)}
}

// ResolvePayment renders the payment preference label. Absent
// preference defaults to deferred payment.
func ResolvePayment(p *domain.PaymentPreference) string {
	if p == nil {
		return "Book Now, Pay Later"
	}
	switch p.Type {
	case domain.PaymentFull:
		return "Full Payment"
	case domain.PaymentBookNowPayLater:
		return "Book Now, Pay Later"
	default:
		return "Book Now, Pay Later"
	}
}
