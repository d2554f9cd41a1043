package out

import (
	"context"

	analyticsout "vitals/internal/modules/analytics/port/out"
	synthdomain "vitals/internal/modules/synth/domain"
	synthin "vitals/internal/modules/synth/port/in"
)

// SynthSampleSource feeds the analytics engine from the synth module.
type SynthSampleSource struct {
	synth synthin.Usecase
}

func NewSynthSampleSource(synth synthin.Usecase) analyticsout.SampleSource {
	return &SynthSampleSource{synth: synth}
}

func (s *SynthSampleSource) HRVSeries(ctx context.Context, days int) ([]synthdomain.DailyHRVSample, error) {
	return s.synth.HRVSeries(ctx, days)
}

func (s *SynthSampleSource) SleepSeries(ctx context.Context, days int) ([]synthdomain.DailySleepSample, error) {
	return s.synth.SleepSeries(ctx, days)
}

func (s *SynthSampleSource) ActivitySnapshot(ctx context.Context) (synthdomain.ActivitySnapshot, error) {
	return s.synth.ActivitySnapshot(ctx)
}
