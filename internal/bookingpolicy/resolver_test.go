package bookingpolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/pkg/ptr"
)

func TestResolveLeadTime(t *testing.T) {
	tests := []struct {
		name   string
		notice int
		unit   domain.DurationUnit
		want   string
	}{
		{"zero notice", 0, domain.UnitHours, "No lead time"},
		{"minutes", 30, domain.UnitMinutes, "30 minutes"},
		{"hours", 2, domain.UnitHours, "2 hours"},
		{"days", 3, domain.UnitDays, "3 days"},
		{"missing unit falls back to minutes", 15, "", "15 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLeadTime(tt.notice, tt.unit))
		})
	}
}

func TestResolveVisibilityWindow(t *testing.T) {
	assert.Equal(t, "60 days ahead", ResolveVisibilityWindow(nil))
	assert.Equal(t, "90 days ahead", ResolveVisibilityWindow(ptr.To(90)))
}

func TestResolveCancellation(t *testing.T) {
	tests := []struct {
		name   string
		policy domain.CancellationPolicy
		want   PolicyDecision
	}{
		{
			"not allowed",
			domain.CancellationPolicy{Allowed: false},
			PolicyDecision{Allowed: false, Label: "Not allowed"},
		},
		{
			"allowed with hour cutoff",
			domain.CancellationPolicy{Allowed: true, CutoffValue: ptr.To(2), CutoffUnit: ptr.To(domain.CutoffHours)},
			PolicyDecision{Allowed: true, Label: "Allowed (2h cutoff)"},
		},
		{
			"allowed with day cutoff uses d abbreviation",
			domain.CancellationPolicy{Allowed: true, CutoffValue: ptr.To(3), CutoffUnit: ptr.To(domain.CutoffDays)},
			PolicyDecision{Allowed: true, Label: "Allowed (3d cutoff)"},
		},
		{
			"allowed without cutoff uses default",
			domain.CancellationPolicy{Allowed: true},
			PolicyDecision{Allowed: true, Label: "Allowed (24h cutoff)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCancellation(tt.policy))
		})
	}
}

func TestResolveReschedule(t *testing.T) {
	assert.Equal(t,
		PolicyDecision{Allowed: false, Label: "Not allowed"},
		ResolveReschedule(domain.ReschedulePolicy{Allowed: false}))

	assert.Equal(t,
		PolicyDecision{Allowed: true, Label: "Allowed (24h cutoff)"},
		ResolveReschedule(domain.ReschedulePolicy{Allowed: true}))

	assert.Equal(t,
		PolicyDecision{Allowed: true, Label: "Allowed (48h cutoff)"},
		ResolveReschedule(domain.ReschedulePolicy{Allowed: true, CutoffHours: 48}))
}

func TestResolvePayment(t *testing.T) {
	assert.Equal(t, "Book Now, Pay Later", ResolvePayment(nil))
	assert.Equal(t, "Full Payment", ResolvePayment(&domain.PaymentPreference{Type: domain.PaymentFull}))
	assert.Equal(t, "Book Now, Pay Later", ResolvePayment(&domain.PaymentPreference{Type: domain.PaymentBookNowPayLater}))
	assert.Equal(t, "Book Now, Pay Later", ResolvePayment(&domain.PaymentPreference{Type: "crypto"}))
}

func TestResolve_AllDefaults(t *testing.T) {
	svc := &domain.Service{
		ServiceType: domain.ServiceTypeRegular,
		Reschedule:  domain.ReschedulePolicy{Allowed: true, CutoffHours: domain.DefaultRescheduleCutoff},
	}

	got := Resolve(svc)

	assert.Equal(t, "No lead time", got.LeadTime)
	assert.Equal(t, "60 days ahead", got.VisibilityWindow)
	assert.Equal(t, PolicyDecision{Allowed: false, Label: "Not allowed"}, got.Cancellation)
	assert.Equal(t, PolicyDecision{Allowed: true, Label: "Allowed (24h cutoff)"}, got.Reschedule)
	assert.Equal(t, "Book Now, Pay Later", got.Payment)
	assert.Nil(t, got.Capacity)
	assert.Nil(t, got.MultiDay)
}

func TestResolve_TypeScopedSections(t *testing.T) {
	bundle := &domain.BundleBookingPolicy{Enabled: true, MinSlots: ptr.To(2), MaxSlots: ptr.To(4)}
	constraint := &domain.MultiDayConstraint{MinDays: 2, MaxDays: 5}

	regular := &domain.Service{ServiceType: domain.ServiceTypeRegular, Bundle: bundle, MultiDay: constraint}
	multi := &domain.Service{ServiceType: domain.ServiceTypeMultiDay, Bundle: bundle, MultiDay: constraint}

	gotRegular := Resolve(regular)
	assert.Equal(t, bundle, gotRegular.Bundle)
	assert.Nil(t, gotRegular.MultiDay, "multi-day constraint must not leak onto regular services")

	gotMulti := Resolve(multi)
	assert.Nil(t, gotMulti.Bundle, "bundle policy must not leak onto multi-day services")
	assert.Equal(t, constraint, gotMulti.MultiDay)
}
