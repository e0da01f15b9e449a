package slotconfig

import (
	"errors"

	"github.com/bookeasy/admin-service/internal/domain"
	"github.com/bookeasy/admin-service/pkg/types"
)

var (
	ErrUnknownDay       = errors.New("slotconfig: unknown weekday")
	ErrIndexOutOfRange  = errors.New("slotconfig: slot index out of range")
	ErrUnknownSlotField = errors.New("slotconfig: unknown slot field")
)

// SlotField names the mutable boundary of a DaySlot
type SlotField string

const (
	FieldStart SlotField = "start"
	FieldEnd   SlotField = "end"
)

// defaultAppendMinutes is the length of a freshly appended regular slot
const defaultAppendMinutes = 60

// AddSlot appends a slot to the given day and returns the updated
// configuration. The input is not modified. The appended slot starts
// where the day's last slot ends, so consecutive adds model breaks;
// on an empty day the type's default slot is appended instead.
func AddSlot(cfg domain.SlotConfiguration, day domain.Weekday) (domain.SlotConfiguration, error) {
	if !domain.IsValidWeekday(day) {
		return cfg, ErrUnknownDay
	}

	out := clone(cfg)
	slots := out.Week.SlotsFor(day)

	if len(slots) == 0 {
		out.Week.SetSlotsFor(day, []domain.DaySlot{DefaultSlot(cfg.Type)})
		return out, nil
	}

	prev := slots[len(slots)-1]
	out.Week.SetSlotsFor(day, append(slots, breakSlotAfter(cfg.Type, prev)))
	return out, nil
}

// RemoveSlot deletes the slot at index and returns the updated
// configuration. A day that had slots never ends up empty: removing
// the last remaining slot resets the day to the type's default slot.
func RemoveSlot(cfg domain.SlotConfiguration, day domain.Weekday, index int) (domain.SlotConfiguration, error) {
	if !domain.IsValidWeekday(day) {
		return cfg, ErrUnknownDay
	}

	out := clone(cfg)
	slots := out.Week.SlotsFor(day)
	if index < 0 || index >= len(slots) {
		return cfg, ErrIndexOutOfRange
	}

	if len(slots) == 1 {
		out.Week.SetSlotsFor(day, []domain.DaySlot{DefaultSlot(cfg.Type)})
		return out, nil
	}

	out.Week.SetSlotsFor(day, append(slots[:index], slots[index+1:]...))
	return out, nil
}

// UpdateSlot replaces one boundary of one slot. Inverted or
// overlapping ranges are accepted as-is; the editor allows transient
// invalid states and validation happens at publish time.
func UpdateSlot(cfg domain.SlotConfiguration, day domain.Weekday, index int, field SlotField, value string) (domain.SlotConfiguration, error) {
	if !domain.IsValidWeekday(day) {
		return cfg, ErrUnknownDay
	}

	out := clone(cfg)
	slots := out.Week.SlotsFor(day)
	if index < 0 || index >= len(slots) {
		return cfg, ErrIndexOutOfRange
	}

	switch field {
	case FieldStart:
		slots[index].Start = value
	case FieldEnd:
		slots[index].End = value
	default:
		return cfg, ErrUnknownSlotField
	}

	out.Week.SetSlotsFor(day, slots)
	return out, nil
}

// breakSlotAfter derives the slot appended after prev. Full-day
// boundaries move one ladder step up from the previous end; timed
// boundaries start at the previous end and run for an hour.
func breakSlotAfter(t domain.ServiceType, prev domain.DaySlot) domain.DaySlot {
	if t == domain.ServiceTypeFullDay {
		start := nextLabel(prev.End)
		return domain.DaySlot{Start: start, End: nextLabel(start)}
	}

	start := types.TimeString(prev.End)
	end, err := start.AddMinutes(defaultAppendMinutes)
	if err != nil {
		return DefaultSlot(t)
	}
	return domain.DaySlot{Start: start.String(), End: end.String()}
}

func timeStringValid(v string) bool {
	return types.TimeString(v).Validate() == nil
}

// clone deep-copies a configuration so mutators never alias the
// caller's slices.
func clone(cfg domain.SlotConfiguration) domain.SlotConfiguration {
	out := domain.SlotConfiguration{Type: cfg.Type}
	for _, day := range domain.Weekdays() {
		src := cfg.Week.SlotsFor(day)
		dst := make([]domain.DaySlot, len(src))
		copy(dst, src)
		out.Week.SetSlotsFor(day, dst)
	}
	return out
}
