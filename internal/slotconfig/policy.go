package slotconfig

import (
	"github.com/bookeasy/admin-service/internal/domain"
)

// fullDayLadder is the closed set of boundary labels for full-day
// services, in ladder order. Index 0 is the closed sentinel.
var fullDayLadder = []string{
	domain.OffLabel,
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
	"6:00 PM",
}

// ValidLabels reports the set of boundary values a slot may carry for
// the given service type. Regular and multi-day services accept any
// HH:MM value, so their label set is open and nil is returned.
func ValidLabels(t domain.ServiceType) ([]string, error) {
	switch t {
	case domain.ServiceTypeRegular, domain.ServiceTypeMultiDay:
		return nil, nil
	case domain.ServiceTypeFullDay:
		labels := make([]string, len(fullDayLadder))
		copy(labels, fullDayLadder)
		return labels, nil
	default:
		return nil, domain.ErrUnknownServiceType
	}
}

// DefaultConfiguration seeds a new service of the given type with its
// out-of-the-box weekly schedule.
func DefaultConfiguration(t domain.ServiceType) (domain.SlotConfiguration, error) {
	cfg := domain.SlotConfiguration{Type: t}
	cfg.Week.Normalize()

	switch t {
	case domain.ServiceTypeRegular:
		for _, day := range domain.WorkWeekdays() {
			cfg.Week.SetSlotsFor(day, []domain.DaySlot{{
				Start: domain.DefaultRegularDayStart,
				End:   domain.DefaultRegularDayEnd,
			}})
		}
	case domain.ServiceTypeFullDay:
		for _, day := range domain.WorkWeekdays() {
			cfg.Week.SetSlotsFor(day, []domain.DaySlot{{
				Start: domain.DefaultFullDayStart,
				End:   domain.DefaultFullDayEnd,
			}})
		}
		for _, day := range []domain.Weekday{domain.Saturday, domain.Sunday} {
			cfg.Week.SetSlotsFor(day, []domain.DaySlot{{
				Start: domain.OffLabel,
				End:   domain.OffLabel,
			}})
		}
	case domain.ServiceTypeMultiDay:
		// Multi-day services start with an empty grid; the bookable
		// window comes from the day-range constraint, not weekly slots.
	default:
		return domain.SlotConfiguration{}, domain.ErrUnknownServiceType
	}

	return cfg, nil
}

// DefaultSlot is the single slot a day resets to when its last slot
// is removed.
func DefaultSlot(t domain.ServiceType) domain.DaySlot {
	if t == domain.ServiceTypeFullDay {
		return domain.DaySlot{Start: domain.DefaultFullDayStart, End: domain.DefaultFullDayEnd}
	}
	return domain.DaySlot{Start: domain.DefaultRegularDayStart, End: domain.DefaultRegularDayEnd}
}

// ladderIndex returns the position of a label on the full-day ladder,
// or -1 if the label is not on it.
func ladderIndex(label string) int {
	for i, l := range fullDayLadder {
		if l == label {
			return i
		}
	}
	return -1
}

// nextLabel advances a full-day label one step up the ladder,
// clamping at the top. Unknown labels and Off advance to the first
// real label.
func nextLabel(label string) string {
	idx := ladderIndex(label)
	if idx < 1 {
		return fullDayLadder[1]
	}
	if idx >= len(fullDayLadder)-1 {
		return fullDayLadder[len(fullDayLadder)-1]
	}
	return fullDayLadder[idx+1]
}

// IsValidLabel reports whether the boundary value is acceptable for
// the service type. Regular and multi-day values must parse as HH:MM;
// full-day values must sit on the ladder.
func IsValidLabel(t domain.ServiceType, label string) bool {
	switch t {
	case domain.ServiceTypeFullDay:
		return ladderIndex(label) >= 0
	case domain.ServiceTypeRegular, domain.ServiceTypeMultiDay:
		return timeStringValid(label)
	default:
		return false
	}
}
