package domain

// Sentinel label marking a full-day boundary as closed
const OffLabel = "Off"

// Default configuration values
const (
	DefaultDurationValue       = 60
	DefaultVisibilityDays      = 60
	DefaultRescheduleCutoff    = 24 // hours
	DefaultCancellationCutoff  = 24
	DefaultRegularDayStart     = "09:00"
	DefaultRegularDayEnd       = "17:00"
	DefaultFullDayStart        = "9:00 AM"
	DefaultFullDayEnd          = "6:00 PM"
	DefaultMultiDayMinDays     = 1
	DefaultMultiDayMaxDays     = 5
)

// Business validation constants
const (
	MaxServiceNameLength   = 255
	MaxFieldLabelLength    = 100
	MinMultiDaySpan        = 1
	MaxMultiDaySpan        = 365
	MinBundleSlots         = 1
	MaxBundleSlots         = 50
	MinConcurrentBookings  = 1
	MaxConcurrentBookings  = 1000
	MaxLeadTimeValue       = 10080 // minutes in a week
	MaxVisibilityDays      = 730
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
