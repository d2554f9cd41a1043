package domain

import (
	"time"

	synthdomain "vitals/internal/modules/synth/domain"
)

// Period describes the day window a report covers, inclusive on both ends.
type Period struct {
	Days  int
	Start time.Time
	End   time.Time
}

// StatusReport is rebuilt from scratch on every request; nothing is cached
// or compared across invocations.
type StatusReport struct {
	Date            time.Time
	HRV             synthdomain.DailyHRVSample
	Sleep           synthdomain.DailySleepSample
	SleepAvg7d      float64
	Activity        synthdomain.ActivitySnapshot
	Alerts          []string
	Summary         string
	Recommendations []string
}

type CategoryDistribution struct {
	Low    int
	Normal int
	High   int
}

type HRVReport struct {
	Period       Period
	Current      float64
	Average      float64
	Min          float64
	Max          float64
	StdDev       float64
	Trend        TrendResult
	Distribution CategoryDistribution
	Recent       []synthdomain.DailyHRVSample
	Insights     []string
}

type SleepReport struct {
	Period        Period
	LastNight     synthdomain.DailySleepSample
	AvgDuration   float64
	AvgDeep       float64
	AvgREM        float64
	AvgScore      float64
	AvgBedtime    synthdomain.ClockTime
	AvgWakeTime   synthdomain.ClockTime
	DurationTrend TrendResult
	ScoreTrend    TrendResult
	Debt          SleepDebt
	Consistency   SleepConsistency
	BestNight     synthdomain.DailySleepSample
	WorstNight    synthdomain.DailySleepSample
	Recent        []synthdomain.DailySleepSample
	Insights      []string
}

type AlertReport struct {
	GeneratedAt     time.Time
	Active          []AlertThreshold
	Passing         []AlertThreshold
	Summary         string
	Recommendations RecommendationTier
	NextCheck       time.Time
}
