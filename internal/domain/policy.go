package domain

// DurationUnit qualifies a numeric duration or notice value
type DurationUnit string

const (
	UnitMinutes DurationUnit = "Minutes"
	UnitHours   DurationUnit = "Hours"
	UnitDays    DurationUnit = "Days"
)

// CutoffUnit qualifies a cancellation cutoff value
type CutoffUnit string

const (
	CutoffHours CutoffUnit = "hours"
	CutoffDays  CutoffUnit = "days"
)

// ConsecutivenessRule governs how multi-day date selections relate
type ConsecutivenessRule string

const (
	// ConsecutivenessFlexible allows consecutive or non-consecutive dates
	ConsecutivenessFlexible ConsecutivenessRule = "flexible"
	// ConsecutivenessOnly requires a gap-free span of dates
	ConsecutivenessOnly ConsecutivenessRule = "consecutive-only"
)

// MultiDayConstraint bounds multi-day bookings. Only present on
// multi-day services.
type MultiDayConstraint struct {
	MinDays         int                 `json:"minDays"`
	MaxDays         int                 `json:"maxDays"`
	AllowedWeekdays []Weekday           `json:"allowedWeekdays"`
	Consecutiveness ConsecutivenessRule `json:"consecutivenessRule"`
}

// BundleBookingPolicy lets a customer reserve several slots in one
// transaction. Only meaningful for regular services.
type BundleBookingPolicy struct {
	Enabled  bool `json:"enabled"`
	MinSlots *int `json:"minSlots"`
	MaxSlots *int `json:"maxSlots"`
}

// CapacityPolicy bounds concurrent bookings per slot; nil means
// unbounded.
type CapacityPolicy struct {
	MaxConcurrentBookingsPerSlot *int `json:"maxConcurrentBookingsPerSlot"`
}

// CancellationPolicy controls customer-initiated cancellation
type CancellationPolicy struct {
	Allowed     bool        `json:"allowed"`
	CutoffValue *int        `json:"cutoffValue"`
	CutoffUnit  *CutoffUnit `json:"cutoffUnit"`
}

// ReschedulePolicy controls customer-initiated rescheduling. The
// cutoff is a real configurable value with a 24h default.
type ReschedulePolicy struct {
	Allowed     bool `json:"allowed"`
	CutoffHours int  `json:"cutoffHours"`
}

// PaymentType tags the payment preference variant
type PaymentType string

const (
	PaymentFull            PaymentType = "fullPayment"
	PaymentBookNowPayLater PaymentType = "bookNowPayLater"
)

// PaymentPreference describes how the service collects payment.
// Label is only used by the fullPayment variant.
type PaymentPreference struct {
	Type        PaymentType `json:"type"`
	Name        string      `json:"name"`
	Label       string      `json:"label,omitempty"`
	Description string      `json:"description"`
}
