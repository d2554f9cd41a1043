package domain_test

import (
	"testing"

	"vitals/internal/modules/synth/domain"
)

func TestCategorizeHRVPartition(t *testing.T) {
	t.Parallel()
	// Every value in the generated range lands in exactly one bucket, with
	// strict comparisons at both boundaries.
	for v := 20.0; v <= 80; v++ {
		got := domain.CategorizeHRV(v)
		switch {
		case v < 30:
			if got != domain.CategoryLow {
				t.Fatalf("value %v: got %s, want low", v, got)
			}
		case v > 60:
			if got != domain.CategoryHigh {
				t.Fatalf("value %v: got %s, want high", v, got)
			}
		default:
			if got != domain.CategoryNormal {
				t.Fatalf("value %v: got %s, want normal", v, got)
			}
		}
	}
	if domain.CategorizeHRV(30) != domain.CategoryNormal {
		t.Fatalf("30 must be normal, not low")
	}
	if domain.CategorizeHRV(60) != domain.CategoryNormal {
		t.Fatalf("60 must be normal, not high")
	}
}

func TestClockTimeFormatting(t *testing.T) {
	t.Parallel()
	if got := (domain.ClockTime{Hour: 7, Minute: 5}).String(); got != "07:05" {
		t.Fatalf("got %q, want zero-padded 07:05", got)
	}
	if got := (domain.ClockTime{Hour: 23, Minute: 59}).MinutesAfterMidnight(); got != 1439 {
		t.Fatalf("minutes = %d, want 1439", got)
	}
}

func TestClockTimeFromMinutesWraps(t *testing.T) {
	t.Parallel()
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{1440, "00:00"},
		{1500, "01:00"},
		{-60, "23:00"},
	}
	for _, c := range cases {
		if got := domain.ClockTimeFromMinutes(c.minutes).String(); got != c.want {
			t.Fatalf("minutes %d: got %s, want %s", c.minutes, got, c.want)
		}
	}
}
