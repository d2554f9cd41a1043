package service

import (
	"math"

	"vitals/internal/modules/synth/domain"
	"vitals/internal/platform/clock"
	"vitals/internal/platform/randsrc"
)

// Generator synthesizes plausible daily health series. It assumes the caller
// has already validated the day count; any positive value is honored.
type Generator struct {
	clk clock.Clock
	rnd randsrc.Source
}

func NewGenerator(clk clock.Clock, rnd randsrc.Source) *Generator {
	return &Generator{clk: clk, rnd: rnd}
}

// HRVSeries returns one sample per day, oldest first, ending today.
func (g *Generator) HRVSeries(days int) []domain.DailyHRVSample {
	today := g.clk.Today()
	samples := make([]domain.DailyHRVSample, 0, days)
	for i := 0; i < days; i++ {
		value := 45 + g.uniform(-10, 10)
		value = math.Round(clamp(value, 20, 80))
		samples = append(samples, domain.DailyHRVSample{
			Date:     today.AddDate(0, 0, -(days - 1 - i)),
			Value:    value,
			Category: domain.CategorizeHRV(value),
		})
	}
	return samples
}

// SleepSeries returns one night per day, oldest first, ending today.
func (g *Generator) SleepSeries(days int) []domain.DailySleepSample {
	today := g.clk.Today()
	samples := make([]domain.DailySleepSample, 0, days)
	for i := 0; i < days; i++ {
		duration := round1(6.5 + g.uniform(0, 2.5))
		bedtime := domain.ClockTime{
			Hour:   (22 + g.rnd.IntN(3)) % 24,
			Minute: g.rnd.IntN(60),
		}
		samples = append(samples, domain.DailySleepSample{
			Date:           today.AddDate(0, 0, -(days - 1 - i)),
			DurationHours:  duration,
			DeepSleepHours: round1(duration * (0.15 + g.uniform(0, 0.10))),
			REMSleepHours:  round1(duration * (0.20 + g.uniform(0, 0.10))),
			SleepScore:     60 + g.rnd.IntN(35),
			Bedtime:        bedtime,
			WakeTime:       wakeAfter(bedtime, duration),
		})
	}
	return samples
}

// ActivitySnapshot draws a fresh reading on every call.
func (g *Generator) ActivitySnapshot() domain.ActivitySnapshot {
	return domain.ActivitySnapshot{
		Steps:           3000 + g.rnd.IntN(12000),
		ActiveCalories:  150 + g.rnd.IntN(550),
		ExerciseMinutes: 10 + g.rnd.IntN(65),
	}
}

// wakeAfter adds a one-decimal hour duration to a bedtime. Durations are in
// tenths of an hour, so the offset is an exact number of minutes.
func wakeAfter(bedtime domain.ClockTime, durationHours float64) domain.ClockTime {
	offset := int(math.Round(durationHours*10)) * 6
	return domain.ClockTimeFromMinutes(bedtime.MinutesAfterMidnight() + offset)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rnd.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
