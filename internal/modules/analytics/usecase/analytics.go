package usecase

import (
	"context"
	"math"
	"time"

	"vitals/internal/modules/analytics/domain"
	"vitals/internal/modules/analytics/dto"
	analyticsin "vitals/internal/modules/analytics/port/in"
	"vitals/internal/modules/analytics/service"
	synthdomain "vitals/internal/modules/synth/domain"
)

const dateLayout = "2006-01-02"

type Interactor struct {
	engine *service.Engine
}

func NewInteractor(engine *service.Engine) analyticsin.Usecase {
	return &Interactor{engine: engine}
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	report, err := i.engine.Status(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return dto.StatusOutput{
		Date:       report.Date.Format(dateLayout),
		HRV:        mapHRVSample(report.HRV),
		LastNight:  mapSleepSample(report.Sleep),
		SleepAvg7d: round1(report.SleepAvg7d),
		Activity: dto.ActivityOutput{
			Steps:           report.Activity.Steps,
			ActiveCalories:  report.Activity.ActiveCalories,
			ExerciseMinutes: report.Activity.ExerciseMinutes,
		},
		Alerts:          emptyIfNil(report.Alerts),
		Summary:         report.Summary,
		Recommendations: emptyIfNil(report.Recommendations),
	}, nil
}

func (i *Interactor) HRVReport(ctx context.Context, days int) (dto.HRVReportOutput, error) {
	report, err := i.engine.HRVReport(ctx, days)
	if err != nil {
		return dto.HRVReportOutput{}, err
	}
	recent := make([]dto.HRVSampleOutput, len(report.Recent))
	for idx, s := range report.Recent {
		recent[idx] = mapHRVSample(s)
	}
	return dto.HRVReportOutput{
		Period:  mapPeriod(report.Period),
		Current: report.Current,
		Average: round1(report.Average),
		Min:     report.Min,
		Max:     report.Max,
		StdDev:  round1(report.StdDev),
		Trend:   mapTrend(report.Trend),
		Distribution: dto.DistributionOutput{
			Low:    report.Distribution.Low,
			Normal: report.Distribution.Normal,
			High:   report.Distribution.High,
		},
		Recent:   recent,
		Insights: emptyIfNil(report.Insights),
	}, nil
}

func (i *Interactor) SleepReport(ctx context.Context, days int) (dto.SleepReportOutput, error) {
	report, err := i.engine.SleepReport(ctx, days)
	if err != nil {
		return dto.SleepReportOutput{}, err
	}
	recent := make([]dto.SleepSampleOutput, len(report.Recent))
	for idx, s := range report.Recent {
		recent[idx] = mapSleepSample(s)
	}
	return dto.SleepReportOutput{
		Period:        mapPeriod(report.Period),
		LastNight:     mapSleepSample(report.LastNight),
		AvgDuration:   round1(report.AvgDuration),
		AvgDeep:       round1(report.AvgDeep),
		AvgREM:        round1(report.AvgREM),
		AvgScore:      round1(report.AvgScore),
		AvgBedtime:    report.AvgBedtime.String(),
		AvgWakeTime:   report.AvgWakeTime.String(),
		DurationTrend: mapTrend(report.DurationTrend),
		ScoreTrend:    mapTrend(report.ScoreTrend),
		Debt: dto.SleepDebtOutput{
			TotalHours: round1(report.Debt.TotalHours),
			Status:     string(report.Debt.Status),
		},
		Consistency: dto.ConsistencyOutput{
			BedtimeVarianceMinutes: round1(report.Consistency.BedtimeVariance),
			WakeVarianceMinutes:    round1(report.Consistency.WakeVariance),
			Score:                  round1(report.Consistency.Score),
		},
		BestNight:  mapSleepSample(report.BestNight),
		WorstNight: mapSleepSample(report.WorstNight),
		Recent:     recent,
		Insights:   emptyIfNil(report.Insights),
	}, nil
}

func (i *Interactor) AlertCheck(ctx context.Context) (dto.AlertReportOutput, error) {
	report, err := i.engine.AlertCheck(ctx)
	if err != nil {
		return dto.AlertReportOutput{}, err
	}
	return dto.AlertReportOutput{
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Active:      mapAlerts(report.Active),
		Passing:     mapAlerts(report.Passing),
		Summary:     report.Summary,
		Recommendations: dto.RecommendationsOutput{
			Immediate: emptyIfNil(report.Recommendations.Immediate),
			ShortTerm: emptyIfNil(report.Recommendations.ShortTerm),
			LongTerm:  emptyIfNil(report.Recommendations.LongTerm),
		},
		NextCheck: report.NextCheck.Format(time.RFC3339),
	}, nil
}

func mapPeriod(p domain.Period) dto.PeriodOutput {
	return dto.PeriodOutput{
		Days:  p.Days,
		Start: p.Start.Format(dateLayout),
		End:   p.End.Format(dateLayout),
	}
}

func mapTrend(t domain.TrendResult) dto.TrendOutput {
	return dto.TrendOutput{
		Direction:     string(t.Direction),
		Change:        round1(t.Change),
		ChangePercent: t.ChangePercent,
		Significance:  string(t.Significance),
	}
}

func mapHRVSample(s synthdomain.DailyHRVSample) dto.HRVSampleOutput {
	return dto.HRVSampleOutput{
		Date:     s.Date.Format(dateLayout),
		Value:    s.Value,
		Category: string(s.Category),
	}
}

func mapSleepSample(s synthdomain.DailySleepSample) dto.SleepSampleOutput {
	return dto.SleepSampleOutput{
		Date:           s.Date.Format(dateLayout),
		DurationHours:  s.DurationHours,
		DeepSleepHours: s.DeepSleepHours,
		RemSleepHours:  s.REMSleepHours,
		SleepScore:     s.SleepScore,
		Bedtime:        s.Bedtime.String(),
		WakeTime:       s.WakeTime.String(),
	}
}

func mapAlerts(alerts []domain.AlertThreshold) []dto.AlertOutput {
	out := make([]dto.AlertOutput, len(alerts))
	for i, a := range alerts {
		out[i] = dto.AlertOutput{
			Metric:    a.Metric,
			Threshold: a.Threshold,
			Current:   a.Current,
			Status:    string(a.Status),
			Message:   a.Message,
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// emptyIfNil keeps list fields as [] rather than null in the envelope.
func emptyIfNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
