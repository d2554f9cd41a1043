package in

import (
	"context"

	"vitals/internal/modules/synth/domain"
)

// Usecase exposes series generation to other modules.
type Usecase interface {
	HRVSeries(ctx context.Context, days int) ([]domain.DailyHRVSample, error)
	SleepSeries(ctx context.Context, days int) ([]domain.DailySleepSample, error)
	ActivitySnapshot(ctx context.Context) (domain.ActivitySnapshot, error)
}
