package out

import (
	"context"

	synthdomain "vitals/internal/modules/synth/domain"
)

// SampleSource supplies the synthetic series the engine analyzes.
type SampleSource interface {
	HRVSeries(ctx context.Context, days int) ([]synthdomain.DailyHRVSample, error)
	SleepSeries(ctx context.Context, days int) ([]synthdomain.DailySleepSample, error)
	ActivitySnapshot(ctx context.Context) (synthdomain.ActivitySnapshot, error)
}
