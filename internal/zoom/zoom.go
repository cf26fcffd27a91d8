package zoom

import (
	"math"
	"time"
)

// Tier is a discrete zoom granularity. Tiers order coarsest to finest;
// a higher tier value means finer aggregation.
type Tier int

const (
	TierYear Tier = iota
	TierMonth
	TierWeek
	TierDay
	TierFocus
)

// String returns the tier name used in output and scenario files.
func (t Tier) String() string {
	switch t {
	case TierYear:
		return "year"
	case TierMonth:
		return "month"
	case TierWeek:
		return "week"
	case TierDay:
		return "day"
	case TierFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// Pixels-per-day scale endpoints. At zoom 0 a day is a fifth of a pixel
// (years compress to strips); at zoom 1 a day spans 60 pixels.
const (
	MinPixelsPerDay = 0.2
	MaxPixelsPerDay = 60.0
)

// Tier boundaries on the continuous zoom level. Half-open intervals,
// boundaries inclusive-lower: zoom 0.40 is already TierWeek.
const (
	tierMonthAt = 0.20
	tierWeekAt  = 0.40
	tierDayAt   = 0.60
	tierFocusAt = 0.85
)

// TierFor derives the discrete tier for a zoom level.
func TierFor(level float64) Tier {
	switch {
	case level < tierMonthAt:
		return TierYear
	case level < tierWeekAt:
		return TierMonth
	case level < tierDayAt:
		return TierWeek
	case level < tierFocusAt:
		return TierDay
	default:
		return TierFocus
	}
}

// PixelsPerDay linearly interpolates the time scale for a zoom level.
// PixelsPerDay(0) == 0.2 and PixelsPerDay(1) == 60.0 exactly.
func PixelsPerDay(level float64) float64 {
	return MinPixelsPerDay + (MaxPixelsPerDay-MinPixelsPerDay)*level
}

// Clamp bounds a zoom level to [0,1].
func Clamp(level float64) float64 {
	return math.Min(1, math.Max(0, level))
}

// DaysBetween returns the whole number of days from min to d, truncating
// any sub-day remainder toward zero.
func DaysBetween(min, d time.Time) int {
	return int(d.Sub(min) / (24 * time.Hour))
}

// Position maps a date to a primary-axis pixel offset relative to the
// timeline's minimum date.
func Position(d, minDate time.Time, pixelsPerDay float64) float64 {
	return float64(DaysBetween(minDate, d)) * pixelsPerDay
}

// DateAt maps a primary-axis pixel offset back to a date, at day
// granularity: minDate + floor(px / pixelsPerDay) days.
//
// The quotient of a position produced by Position can land one ulp under
// the exact day count; nudge before flooring so date→position→date
// round-trips at day granularity.
func DateAt(px float64, minDate time.Time, pixelsPerDay float64) time.Time {
	days := int(math.Floor(px/pixelsPerDay + 1e-9))
	return minDate.AddDate(0, 0, days)
}
