package domain

import (
	"fmt"
	"strings"
)

// Form steps of the service editor, in tab order
const (
	StepProductAndSlots = 0
	StepLocationStaff   = 1
	StepOthers          = 2
	StepReview          = 3
)

// ValidateStep checks the slice of a service edited on the given form
// step and returns human-readable problems, empty when the step is
// complete. Unknown steps validate as complete.
func ValidateStep(s *Service, step int) []string {
	switch step {
	case StepProductAndSlots:
		return validateProductAndSlots(s)
	case StepLocationStaff:
		return validateLocationStaff(s)
	case StepOthers:
		return validateOthers(s)
	default:
		return nil
	}
}

// CanAdvanceTo reports whether every step before target is complete.
// Moving backwards is always allowed.
func CanAdvanceTo(s *Service, current, target int) bool {
	if target <= current {
		return true
	}
	for step := current; step < target; step++ {
		if len(ValidateStep(s, step)) > 0 {
			return false
		}
	}
	return true
}

// ValidateForSave is the minimal gate for persisting a draft. Only
// the name is mandatory; everything else may be completed later.
func ValidateForSave(s *Service) []string {
	var problems []string
	if strings.TrimSpace(s.Name) == "" {
		problems = append(problems, "Service name is required")
	}
	if len(s.Name) > MaxServiceNameLength {
		problems = append(problems, fmt.Sprintf("Service name must be at most %d characters", MaxServiceNameLength))
	}
	return problems
}

func validateProductAndSlots(s *Service) []string {
	var problems []string

	if strings.TrimSpace(s.Name) == "" {
		problems = append(problems, "Service name is required")
	}
	if !s.HasProductLink() {
		problems = append(problems, "A product must be selected")
	}
	if !s.ServiceType.IsValid() {
		problems = append(problems, "Service type is not recognised")
	}
	if s.IsMultiDay() {
		// The bookable window of a multi-day service is its day-range
		// constraint; the weekly grid may stay empty.
		problems = append(problems, validateMultiDay(s.MultiDay)...)
	} else if !s.Slots.HasBookableSlots() {
		problems = append(problems, "At least one time slot is required")
	}
	if s.SupportsBundles() && s.Bundle != nil && s.Bundle.Enabled {
		problems = append(problems, validateBundle(s.Bundle)...)
	}

	return problems
}

func validateMultiDay(c *MultiDayConstraint) []string {
	if c == nil {
		return []string{"Day range is required for multi-day services"}
	}

	var problems []string
	if c.MinDays < MinMultiDaySpan {
		problems = append(problems, fmt.Sprintf("Minimum days must be at least %d", MinMultiDaySpan))
	}
	if c.MaxDays > MaxMultiDaySpan {
		problems = append(problems, fmt.Sprintf("Maximum days must be at most %d", MaxMultiDaySpan))
	}
	if c.MaxDays < c.MinDays {
		problems = append(problems, "Maximum days cannot be less than minimum days")
	}
	if len(c.AllowedWeekdays) == 0 {
		problems = append(problems, "At least one weekday must be selectable")
	}
	for _, day := range c.AllowedWeekdays {
		if !IsValidWeekday(day) {
			problems = append(problems, fmt.Sprintf("Unknown weekday %q", day))
		}
	}
	return problems
}

func validateBundle(b *BundleBookingPolicy) []string {
	var problems []string
	if b.MinSlots != nil && *b.MinSlots < MinBundleSlots {
		problems = append(problems, fmt.Sprintf("Bundle minimum must be at least %d slot", MinBundleSlots))
	}
	if b.MaxSlots != nil && *b.MaxSlots > MaxBundleSlots {
		problems = append(problems, fmt.Sprintf("Bundle maximum must be at most %d slots", MaxBundleSlots))
	}
	if b.MinSlots != nil && b.MaxSlots != nil && *b.MaxSlots < *b.MinSlots {
		problems = append(problems, "Bundle maximum cannot be less than bundle minimum")
	}
	return problems
}

func validateLocationStaff(s *Service) []string {
	var problems []string
	if s.LocationType == nil {
		problems = append(problems, "A location type must be chosen")
	} else if *s.LocationType != LocationTypeOnline && *s.LocationType != LocationTypeOffline {
		problems = append(problems, fmt.Sprintf("Unknown location type %q", *s.LocationType))
	}
	if s.LocationType != nil && *s.LocationType == LocationTypeOffline && len(s.LocationIDs) == 0 && !s.HideLocationSelection {
		problems = append(problems, "At least one location must be attached")
	}
	return problems
}

func validateOthers(s *Service) []string {
	var problems []string
	if s.Payment == nil {
		problems = append(problems, "A payment preference must be chosen")
	} else if s.Payment.Type != PaymentFull && s.Payment.Type != PaymentBookNowPayLater {
		problems = append(problems, fmt.Sprintf("Unknown payment preference %q", s.Payment.Type))
	}
	if s.Capacity.MaxConcurrentBookingsPerSlot != nil {
		if v := *s.Capacity.MaxConcurrentBookingsPerSlot; v < MinConcurrentBookings || v > MaxConcurrentBookings {
			problems = append(problems, fmt.Sprintf("Capacity must be between %d and %d", MinConcurrentBookings, MaxConcurrentBookings))
		}
	}
	if s.VisibilityDays != nil && (*s.VisibilityDays < 1 || *s.VisibilityDays > MaxVisibilityDays) {
		problems = append(problems, fmt.Sprintf("Visibility window must be between 1 and %d days", MaxVisibilityDays))
	}
	return problems
}
