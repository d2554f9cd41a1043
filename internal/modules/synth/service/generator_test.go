package service_test

import (
	"math"
	"testing"
	"time"

	"vitals/internal/modules/synth/domain"
	"vitals/internal/modules/synth/service"
	"vitals/internal/platform/randsrc"
)

type fixedClock struct {
	today time.Time
}

func (c fixedClock) Now() time.Time   { return c.today.Add(10 * time.Hour) }
func (c fixedClock) Today() time.Time { return c.today }

// scriptedRand replays queued draws, falling back to midpoints when the
// script runs out.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return n / 2
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHRVSeriesLengthAndDates(t *testing.T) {
	t.Parallel()
	clk := fixedClock{today: day(2025, time.March, 10)}
	gen := service.NewGenerator(clk, randsrc.System{})

	series := gen.HRVSeries(5)
	if len(series) != 5 {
		t.Fatalf("len = %d, want 5", len(series))
	}
	for i, s := range series {
		want := day(2025, time.March, 6).AddDate(0, 0, i)
		if !s.Date.Equal(want) {
			t.Fatalf("sample %d date = %v, want %v", i, s.Date, want)
		}
	}
	if !series[4].Date.Equal(clk.today) {
		t.Fatalf("series must end at the current day")
	}
}

func TestHRVSeriesScriptedValues(t *testing.T) {
	t.Parallel()
	gen := service.NewGenerator(
		fixedClock{today: day(2025, time.March, 10)},
		&scriptedRand{floats: []float64{0, 0.5, 0.999}},
	)
	series := gen.HRVSeries(3)
	// 45 + uniform(-10, 10): draw 0 gives 35, 0.5 gives 45, 0.999 rounds to 55.
	for i, want := range []float64{35, 45, 55} {
		if series[i].Value != want {
			t.Fatalf("sample %d value = %v, want %v", i, series[i].Value, want)
		}
		if series[i].Category != domain.CategoryNormal {
			t.Fatalf("sample %d category = %s, want normal", i, series[i].Category)
		}
	}
}

func TestHRVSeriesValueRange(t *testing.T) {
	t.Parallel()
	gen := service.NewGenerator(fixedClock{today: day(2025, time.March, 10)}, randsrc.System{})
	for _, s := range gen.HRVSeries(90) {
		if s.Value < 20 || s.Value > 80 {
			t.Fatalf("value %v outside [20,80]", s.Value)
		}
		if s.Value != math.Round(s.Value) {
			t.Fatalf("value %v not rounded to an integer", s.Value)
		}
	}
}

func TestSleepSeriesInvariants(t *testing.T) {
	t.Parallel()
	gen := service.NewGenerator(fixedClock{today: day(2025, time.March, 10)}, randsrc.System{})
	series := gen.SleepSeries(90)
	if len(series) != 90 {
		t.Fatalf("len = %d, want 90", len(series))
	}
	for i, s := range series {
		if s.DurationHours < 6.5 || s.DurationHours > 9.0 {
			t.Fatalf("night %d duration %v outside [6.5,9.0]", i, s.DurationHours)
		}
		if s.SleepScore < 60 || s.SleepScore >= 95 {
			t.Fatalf("night %d score %d outside [60,95)", i, s.SleepScore)
		}
		if h := s.Bedtime.Hour; h != 22 && h != 23 && h != 0 {
			t.Fatalf("night %d bedtime hour %d, want 22, 23 or 0", i, h)
		}
		deepShare := s.DeepSleepHours / s.DurationHours
		if deepShare < 0.13 || deepShare > 0.27 {
			t.Fatalf("night %d deep share %v implausible", i, deepShare)
		}
		remShare := s.REMSleepHours / s.DurationHours
		if remShare < 0.18 || remShare > 0.32 {
			t.Fatalf("night %d rem share %v implausible", i, remShare)
		}
	}
}

// Wake time must equal bedtime plus duration for every draw; it is derived,
// never randomized independently.
func TestSleepWakeTimeIdentity(t *testing.T) {
	t.Parallel()
	gen := service.NewGenerator(fixedClock{today: day(2025, time.March, 10)}, randsrc.System{})
	for i, s := range gen.SleepSeries(90) {
		gap := s.WakeTime.MinutesAfterMidnight() - s.Bedtime.MinutesAfterMidnight()
		gap = ((gap % 1440) + 1440) % 1440
		want := int(math.Round(s.DurationHours*10)) * 6 % 1440
		if gap != want {
			t.Fatalf("night %d: wake %s - bed %s = %d min, want %d (duration %.1f h)",
				i, s.WakeTime, s.Bedtime, gap, want, s.DurationHours)
		}
	}
}

func TestSleepSeriesScriptedNight(t *testing.T) {
	t.Parallel()
	// Draw order per night: duration, bed hour, bed minute, deep, rem, score.
	gen := service.NewGenerator(
		fixedClock{today: day(2025, time.March, 10)},
		&scriptedRand{
			floats: []float64{0.2, 0.5, 0.5}, // duration 7.0, deep 0.20, rem 0.25
			ints:   []int{1, 30, 20},         // bed 23:30, score 80
		},
	)
	night := gen.SleepSeries(1)[0]
	if night.DurationHours != 7.0 {
		t.Fatalf("duration = %v, want 7.0", night.DurationHours)
	}
	if night.DeepSleepHours != 1.4 {
		t.Fatalf("deep = %v, want 1.4", night.DeepSleepHours)
	}
	if night.REMSleepHours != 1.8 {
		t.Fatalf("rem = %v, want 1.8", night.REMSleepHours)
	}
	if night.SleepScore != 80 {
		t.Fatalf("score = %d, want 80", night.SleepScore)
	}
	if night.Bedtime.String() != "23:30" {
		t.Fatalf("bedtime = %s, want 23:30", night.Bedtime)
	}
	if night.WakeTime.String() != "06:30" {
		t.Fatalf("wake = %s, want 06:30", night.WakeTime)
	}
}

func TestActivitySnapshotRanges(t *testing.T) {
	t.Parallel()
	gen := service.NewGenerator(fixedClock{today: day(2025, time.March, 10)}, randsrc.System{})
	for i := 0; i < 50; i++ {
		a := gen.ActivitySnapshot()
		if a.Steps < 3000 || a.Steps >= 15000 {
			t.Fatalf("steps %d outside [3000,15000)", a.Steps)
		}
		if a.ActiveCalories < 150 || a.ActiveCalories >= 700 {
			t.Fatalf("calories %d outside [150,700)", a.ActiveCalories)
		}
		if a.ExerciseMinutes < 10 || a.ExerciseMinutes >= 75 {
			t.Fatalf("exercise %d outside [10,75)", a.ExerciseMinutes)
		}
	}
}
