package domain

import (
	"math"

	synthdomain "vitals/internal/modules/synth/domain"
)

// Mean of a series. Zero for an empty series; all real call sites feed
// generator output of length >= 1.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev is the population standard deviation (divide by N, not N-1).
func StdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := Mean(xs)
	sq := 0.0
	for _, x := range xs {
		d := x - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)))
}

func MinMax(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

// ClockAverage averages times of day on a flat minutes-after-midnight scale.
// Times that straddle midnight average incorrectly (22:00 and 02:00 give
// noon, not midnight). Known limitation, kept to match the reference
// analytics output.
func ClockAverage(times []synthdomain.ClockTime) synthdomain.ClockTime {
	if len(times) == 0 {
		return synthdomain.ClockTime{}
	}
	sum := 0
	for _, t := range times {
		sum += t.MinutesAfterMidnight()
	}
	return synthdomain.ClockTimeFromMinutes(sum / len(times))
}

// ClockSpread is the standard deviation of times of day, in minutes, on the
// same flat scale as ClockAverage.
func ClockSpread(times []synthdomain.ClockTime) float64 {
	xs := make([]float64, len(times))
	for i, t := range times {
		xs[i] = float64(t.MinutesAfterMidnight())
	}
	return StdDev(xs)
}
