package usecase

import (
	"context"

	"vitals/internal/modules/synth/domain"
	synthin "vitals/internal/modules/synth/port/in"
	"vitals/internal/modules/synth/service"
)

type Interactor struct {
	gen *service.Generator
}

func NewInteractor(gen *service.Generator) synthin.Usecase {
	return &Interactor{gen: gen}
}

func (i *Interactor) HRVSeries(_ context.Context, days int) ([]domain.DailyHRVSample, error) {
	return i.gen.HRVSeries(days), nil
}

func (i *Interactor) SleepSeries(_ context.Context, days int) ([]domain.DailySleepSample, error) {
	return i.gen.SleepSeries(days), nil
}

func (i *Interactor) ActivitySnapshot(_ context.Context) (domain.ActivitySnapshot, error) {
	return i.gen.ActivitySnapshot(), nil
}
