package domain

import "math"

// SleepDebtTarget is the nightly duration against which debt accrues.
const SleepDebtTarget = 8.0

type DebtStatus string

const (
	DebtMinimal     DebtStatus = "minimal"
	DebtModerate    DebtStatus = "moderate"
	DebtSignificant DebtStatus = "significant"
)

type SleepDebt struct {
	TotalHours float64
	Status     DebtStatus
}

// AccumulateSleepDebt sums each night's shortfall against the 8 hour target.
// Nights over target never pay debt back down.
func AccumulateSleepDebt(durations []float64) SleepDebt {
	total := 0.0
	for _, d := range durations {
		total += math.Max(0, SleepDebtTarget-d)
	}
	debt := SleepDebt{TotalHours: total}
	switch {
	case total > 5:
		debt.Status = DebtSignificant
	case total > 2:
		debt.Status = DebtModerate
	default:
		debt.Status = DebtMinimal
	}
	return debt
}

type SleepConsistency struct {
	// Spread of bedtimes and wake times, in minutes.
	BedtimeVariance float64
	WakeVariance    float64
	Score           float64
}

// ConsistencyScore folds the two spreads into a 0-100 score, floored at 0.
func ConsistencyScore(bedtimeVariance, wakeVariance float64) SleepConsistency {
	return SleepConsistency{
		BedtimeVariance: bedtimeVariance,
		WakeVariance:    wakeVariance,
		Score:           math.Max(0, 100-(bedtimeVariance+wakeVariance)/2),
	}
}
