package domain

import "time"

// DayHours is the working window of a location on a single weekday
type DayHours struct {
	Open         bool   `json:"open"`
	Start        string `json:"start"`
	End          string `json:"end"`
	BreakEnabled bool   `json:"breakEnabled"`
	BreakStart   string `json:"breakStart,omitempty"`
	BreakEnd     string `json:"breakEnd,omitempty"`
}

// WorkingHours maps weekdays to their opening windows
type WorkingHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// HoursFor returns the working window for the given weekday
func (w *WorkingHours) HoursFor(day Weekday) DayHours {
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
		return DayHours{}
	}
}

// Address is the postal address of a physical location
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country"`
}

// Location is a place where services are delivered
type Location struct {
	ID           int64
	ShopID       int64
	Name         string
	Phone        *string
	Email        *string
	Address      Address
	WorkingHours WorkingHours
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
