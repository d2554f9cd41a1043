package domain

import "math"

type TrendDirection string

const (
	TrendStable           TrendDirection = "stable"
	TrendImproving        TrendDirection = "improving"
	TrendDeclining        TrendDirection = "declining"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

type TrendSignificance string

const (
	SignificanceNone        TrendSignificance = "none"
	SignificanceModerate    TrendSignificance = "moderate"
	SignificanceSignificant TrendSignificance = "significant"
)

type TrendResult struct {
	Direction     TrendDirection
	Change        float64
	ChangePercent int
	Significance  TrendSignificance
}

// ClassifyHRVTrend compares the mean of the last three samples against the
// mean of the first three samples of the whole requested range. The window
// boundaries are fixed; this is not a sliding comparison.
func ClassifyHRVTrend(xs []float64) TrendResult {
	change, earlier, ok := windowChange(xs)
	if !ok {
		return TrendResult{Direction: TrendInsufficientData, Significance: SignificanceNone}
	}
	result := TrendResult{Change: change}
	if earlier != 0 {
		result.ChangePercent = int(math.Round(change / earlier * 100))
	}
	if math.Abs(change) < 2 {
		result.Direction = TrendStable
		result.Significance = SignificanceNone
		return result
	}
	result.Direction = direction(change)
	if math.Abs(change) > 5 {
		result.Significance = SignificanceSignificant
	} else {
		result.Significance = SignificanceModerate
	}
	return result
}

// ClassifySleepTrend is the coarse variant used for series on sleep's unit
// scale (hours of duration, score points).
func ClassifySleepTrend(xs []float64) TrendResult {
	change, _, ok := windowChange(xs)
	if !ok {
		return TrendResult{Direction: TrendInsufficientData, Significance: SignificanceNone}
	}
	result := TrendResult{Change: change}
	if math.Abs(change) < 0.2 {
		result.Direction = TrendStable
		result.Significance = SignificanceNone
		return result
	}
	result.Direction = direction(change)
	if math.Abs(change) > 1.0 {
		result.Significance = SignificanceSignificant
	} else {
		result.Significance = SignificanceModerate
	}
	return result
}

func windowChange(xs []float64) (change, earlier float64, ok bool) {
	if len(xs) < 3 {
		return 0, 0, false
	}
	recent := Mean(xs[len(xs)-3:])
	earlier = Mean(xs[:3])
	return recent - earlier, earlier, true
}

func direction(change float64) TrendDirection {
	if change > 0 {
		return TrendImproving
	}
	return TrendDeclining
}
