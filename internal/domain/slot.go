package domain

// Weekday is a lowercase weekday name used as a schedule key
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays returns all seven weekdays in monday-first order
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// WorkWeekdays returns monday through friday
func WorkWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// IsValidWeekday reports whether d is one of the seven weekday keys
func IsValidWeekday(d Weekday) bool {
	for _, day := range Weekdays() {
		if day == d {
			return true
		}
	}
	return false
}

// DaySlot is a single bookable time window within a day. For regular
// services Start/End are 24-hour "HH:MM" values; for full-day
// services they are hourly labels from the fixed ladder, or "Off".
type DaySlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsOff returns true if either boundary carries the Off sentinel
func (s DaySlot) IsOff() bool {
	return s.Start == OffLabel || s.End == OffLabel
}

// WeekSchedule maps each weekday to an ordered sequence of slots.
// All seven days are always present; an empty sequence means closed.
// Multiple slots on one day represent breaks between them.
type WeekSchedule struct {
	Monday    []DaySlot `json:"monday"`
	Tuesday   []DaySlot `json:"tuesday"`
	Wednesday []DaySlot `json:"wednesday"`
	Thursday  []DaySlot `json:"thursday"`
	Friday    []DaySlot `json:"friday"`
	Saturday  []DaySlot `json:"saturday"`
	Sunday    []DaySlot `json:"sunday"`
}

// SlotsFor returns the slot sequence for the given weekday
func (w *WeekSchedule) SlotsFor(day Weekday) []DaySlot {
	switch day {
	case Monday:
		return w.Monday
	case Tuesday:
		return w.Tuesday
	case Wednesday:
		return w.Wednesday
	case Thursday:
		return w.Thursday
	case Friday:
		return w.Friday
	case Saturday:
		return w.Saturday
	case Sunday:
		return w.Sunday
	default:
		return nil
	}
}

// SetSlotsFor replaces the slot sequence for the given weekday
func (w *WeekSchedule) SetSlotsFor(day Weekday, slots []DaySlot) {
	switch day {
	case Monday:
		w.Monday = slots
	case Tuesday:
		w.Tuesday = slots
	case Wednesday:
		w.Wednesday = slots
	case Thursday:
		w.Thursday = slots
	case Friday:
		w.Friday = slots
	case Saturday:
		w.Saturday = slots
	case Sunday:
		w.Sunday = slots
	}
}

// Normalize replaces nil day sequences with empty ones so that every
// weekday key serializes as a list, never as null.
func (w *WeekSchedule) Normalize() {
	for _, day := range Weekdays() {
		if w.SlotsFor(day) == nil {
			w.SetSlotsFor(day, []DaySlot{})
		}
	}
}

// SlotConfiguration is the editable slot model for a service. All
// three service types edit a weekly grid; the canonical persisted
// encoding per type is produced by the slotconfig package.
type SlotConfiguration struct {
	Type ServiceType  `json:"type"`
	Week WeekSchedule `json:"week"`
}

// HasBookableSlots returns true if at least one day has a slot that
// is not an Off sentinel. An all-Off week counts as empty.
func (c *SlotConfiguration) HasBookableSlots() bool {
	for _, day := range Weekdays() {
		for _, slot := range c.Week.SlotsFor(day) {
			if !slot.IsOff() {
				return true
			}
		}
	}
	return false
}
