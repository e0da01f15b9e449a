package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/internal/slotconfig"
	"github.com/bookeasy/admin-service/pkg/ptr"
)

func newDraftService(t *testing.T, typ domain.ServiceType) *domain.Service {
	t.Helper()

	slots, err := slotconfig.DefaultConfiguration(typ)
	require.NoError(t, err)

	svc := &domain.Service{
		Name:        "Deep Tissue Massage",
		ServiceType: typ,
		ProductID:   ptr.To("prod-1001"),
		Slots:       slots,
	}
	if typ == domain.ServiceTypeMultiDay {
		svc.MultiDay = &domain.MultiDayConstraint{
			MinDays:         domain.DefaultMultiDayMinDays,
			MaxDays:         domain.DefaultMultiDayMaxDays,
			AllowedWeekdays: domain.WorkWeekdays(),
			Consecutiveness: domain.ConsecutivenessFlexible,
		}
	}
	return svc
}

func TestValidateStep_DefaultsPassStepZero(t *testing.T) {
	for _, typ := range []domain.ServiceType{
		domain.ServiceTypeRegular,
		domain.ServiceTypeFullDay,
		domain.ServiceTypeMultiDay,
	} {
		svc := newDraftService(t, typ)
		assert.Empty(t, domain.ValidateStep(svc, domain.StepProductAndSlots), "type %s", typ)
	}
}

func TestValidateStep_StepZeroViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Service)
		want   string
	}{
		{"blank name", func(s *domain.Service) { s.Name = "   " }, "Service name is required"},
		{"no product", func(s *domain.Service) { s.ProductID = nil }, "A product must be selected"},
		{"bad type", func(s *domain.Service) { s.ServiceType = "weekly" }, "Service type is not recognised"},
		{"no slots", func(s *domain.Service) { s.Slots.Week = domain.WeekSchedule{} }, "At least one time slot is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newDraftService(t, domain.ServiceTypeRegular)
			tt.mutate(svc)
			assert.Contains(t, domain.ValidateStep(svc, domain.StepProductAndSlots), tt.want)
		})
	}
}

func TestValidateStep_AllOffWeekCountsAsEmpty(t *testing.T) {
	svc := newDraftService(t, domain.ServiceTypeFullDay)
	for _, day := range domain.Weekdays() {
		svc.Slots.Week.SetSlotsFor(day, []domain.DaySlot{{Start: domain.OffLabel, End: domain.OffLabel}})
	}
	assert.Contains(t, domain.ValidateStep(svc, domain.StepProductAndSlots), "At least one time slot is required")
}

func TestValidateStep_MultiDayEmptyGridIsBookable(t *testing.T) {
	svc := newDraftService(t, domain.ServiceTypeMultiDay)

	// The default grid carries no weekly slots; the day-range
	// constraint alone makes the service bookable.
	require.False(t, svc.Slots.HasBookableSlots())
	assert.Empty(t, domain.ValidateStep(svc, domain.StepProductAndSlots))
}

func TestValidateStep_MultiDayRange(t *testing.T) {
	svc := newDraftService(t, domain.ServiceTypeMultiDay)
	svc.MultiDay.MinDays = 5
	svc.MultiDay.MaxDays = 2

	problems := domain.ValidateStep(svc, domain.StepProductAndSlots)
	assert.Contains(t, problems, "Maximum days cannot be less than minimum days")
}

func TestValidateStep_MultiDayNeedsWeekdays(t *testing.T) {
	svc := newDraftService(t, domain.ServiceTypeMultiDay)
	svc.MultiDay.AllowedWeekdays = nil

	problems := domain.ValidateStep(svc, domain.StepProductAndSlots)
	assert.Contains(t, problems, "At least one weekday must be selectable")
}

func TestValidateStep_BundleRange(t *testing.T) {
	svc := newDraftService(t, domain.ServiceTypeRegular)
	svc.Bundle = &domain.BundleBookingPolicy{Enabled: true, MinSlots: ptr.To(4), MaxSlots: ptr.To(2)}

	problems := domain.ValidateStep(svc, domain.StepProductAndSlots)
	assert.Contains(t, problems, "Bundle maximum cannot be less than bundle minimum")

	svc.Bundle.Enabled = false
	assert.Empty(t, domain.ValidateStep(svc, domain.StepProductAndSlots), "disabled bundle is not validated")
}

func TestValidateStep_LocationStaff(t *testing.T) {
	svc := newDraftService(t, domain.ServiceTypeRegular)

	problems := domain.ValidateStep(svc, domain.StepLocationStaff)
	assert.Contains(t, problems, "A location type must be chosen")

	svc.LocationType = ptr.To(domain.LocationTypeOnline)
	assert.Empty(t, domain.ValidateStep(svc, domain.StepLocationStaff))

	svc.LocationType = ptr.To(domain.LocationTypeOffline)
	problems = domain.ValidateStep(svc, domain.StepLocationStaff)
	assert.Contains(t, problems, "At least one location must be attached")

	svc.LocationIDs = []int64{7}
	assert.Empty(t, domain.ValidateStep(svc, domain.StepLocationStaff))
}

func TestValidateStep_Others(t *testing.T) {
	svc := newDraftService(t, domain.ServiceTypeRegular)

	problems := domain.ValidateStep(svc, domain.StepOthers)
	assert.Contains(t, problems, "A payment preference must be chosen")

	svc.Payment = &domain.PaymentPreference{Type: domain.PaymentFull}
	assert.Empty(t, domain.ValidateStep(svc, domain.StepOthers))

	svc.Capacity.MaxConcurrentBookingsPerSlot = ptr.To(0)
	assert.NotEmpty(t, domain.ValidateStep(svc, domain.StepOthers))
}

func TestValidateForSave_NameOnly(t *testing.T) {
	svc := &domain.Service{Name: "Haircut"}
	assert.Empty(t, domain.ValidateForSave(svc))

	svc.Name = "  "
	assert.Contains(t, domain.ValidateForSave(svc), "Service name is required")
}

func TestCanAdvanceTo(t *testing.T) {
	svc := newDraftService(t, domain.ServiceTypeRegular)

	// step 1 incomplete, so the review step is unreachable
	assert.True(t, domain.CanAdvanceTo(svc, domain.StepProductAndSlots, domain.StepLocationStaff))
	assert.False(t, domain.CanAdvanceTo(svc, domain.StepProductAndSlots, domain.StepReview))

	svc.LocationType = ptr.To(domain.LocationTypeOnline)
	svc.Payment = &domain.PaymentPreference{Type: domain.PaymentBookNowPayLater}
	assert.True(t, domain.CanAdvanceTo(svc, domain.StepProductAndSlots, domain.StepReview))

	// going backwards never re-validates
	svc.Name = ""
	assert.True(t, domain.CanAdvanceTo(svc, domain.StepReview, domain.StepProductAndSlots))
}
