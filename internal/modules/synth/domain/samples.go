package domain

import (
	"fmt"
	"time"
)

type HRVCategory string

const (
	CategoryLow    HRVCategory = "low"
	CategoryNormal HRVCategory = "normal"
	CategoryHigh   HRVCategory = "high"
)

// CategorizeHRV buckets a millisecond HRV value. The comparisons are strict:
// exactly 30 and exactly 60 are both normal.
func CategorizeHRV(value float64) HRVCategory {
	switch {
	case value < 30:
		return CategoryLow
	case value > 60:
		return CategoryHigh
	default:
		return CategoryNormal
	}
}

// DailyHRVSample is one synthetic day of heart-rate variability.
type DailyHRVSample struct {
	Date     time.Time
	Value    float64
	Category HRVCategory
}

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinutesAfterMidnight treats the clock face as a flat 0..1439 scale.
func (t ClockTime) MinutesAfterMidnight() int {
	return t.Hour*60 + t.Minute
}

// ClockTimeFromMinutes wraps a minute count onto the 24h clock.
func ClockTimeFromMinutes(minutes int) ClockTime {
	minutes = ((minutes % 1440) + 1440) % 1440
	return ClockTime{Hour: minutes / 60, Minute: minutes % 60}
}

// DailySleepSample is one synthetic night. WakeTime is always derived from
// Bedtime plus DurationHours, never randomized on its own.
type DailySleepSample struct {
	Date           time.Time
	DurationHours  float64
	DeepSleepHours float64
	REMSleepHours  float64
	SleepScore     int
	Bedtime        ClockTime
	WakeTime       ClockTime
}

// ActivitySnapshot is a single day's synthetic activity reading. Values are
// drawn independently; there is no cross-day activity series.
type ActivitySnapshot struct {
	Steps           int
	ActiveCalories  int
	ExerciseMinutes int
}
