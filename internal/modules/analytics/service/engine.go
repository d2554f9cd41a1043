package service

import (
	"context"
	"fmt"
	"time"

	"vitals/internal/modules/analytics/domain"
	analyticsout "vitals/internal/modules/analytics/port/out"
	synthdomain "vitals/internal/modules/synth/domain"
	"vitals/internal/platform/clock"
)

// statusWindowDays is the window behind status and alert checks: the
// smallest window that still supports the 7-day sleep average.
const statusWindowDays = 7

const recentSliceDays = 10

// Engine derives the status, HRV, sleep, and alert computations from freshly
// generated series. Every method is a pure function of its inputs and the
// current date; nothing is shared between calls.
type Engine struct {
	samples analyticsout.SampleSource
	clk     clock.Clock
}

func NewEngine(samples analyticsout.SampleSource, clk clock.Clock) *Engine {
	return &Engine{samples: samples, clk: clk}
}

func (e *Engine) Status(ctx context.Context) (domain.StatusReport, error) {
	hrv, sleep, activity, err := e.freshWindow(ctx)
	if err != nil {
		return domain.StatusReport{}, err
	}
	latestHRV := hrv[len(hrv)-1]
	lastNight := sleep[len(sleep)-1]

	report := domain.StatusReport{
		Date:       e.clk.Today(),
		HRV:        latestHRV,
		Sleep:      lastNight,
		SleepAvg7d: domain.Mean(durations(sleep)),
		Activity:   activity,
	}
	if latestHRV.Value < domain.HRVWarningThreshold {
		report.Alerts = append(report.Alerts, fmt.Sprintf("Low HRV detected: %.0f ms", latestHRV.Value))
	}
	if lastNight.DurationHours < domain.SleepWarningThreshold {
		report.Alerts = append(report.Alerts, fmt.Sprintf("Short sleep last night: %.1f h", lastNight.DurationHours))
	}
	report.Summary = statusSummary(latestHRV.Category, lastNight.DurationHours, activity.Steps)
	report.Recommendations = statusRecommendations(latestHRV.Category, lastNight.DurationHours, activity.Steps)
	return report, nil
}

func (e *Engine) HRVReport(ctx context.Context, days int) (domain.HRVReport, error) {
	series, err := e.samples.HRVSeries(ctx, days)
	if err != nil {
		return domain.HRVReport{}, err
	}
	values := make([]float64, len(series))
	dist := domain.CategoryDistribution{}
	for i, s := range series {
		values[i] = s.Value
		switch s.Category {
		case synthdomain.CategoryLow:
			dist.Low++
		case synthdomain.CategoryHigh:
			dist.High++
		default:
			dist.Normal++
		}
	}
	lo, hi := domain.MinMax(values)
	current := series[len(series)-1]
	trend := domain.ClassifyHRVTrend(values)

	report := domain.HRVReport{
		Period:       e.period(days, series[0].Date),
		Current:      current.Value,
		Average:      domain.Mean(values),
		Min:          lo,
		Max:          hi,
		StdDev:       domain.StdDev(values),
		Trend:        trend,
		Distribution: dist,
		Recent:       series[max(0, len(series)-recentSliceDays):],
	}
	report.Insights = hrvInsights(trend, current.Category, float64(dist.Low)/float64(len(series)))
	return report, nil
}

func (e *Engine) SleepReport(ctx context.Context, days int) (domain.SleepReport, error) {
	series, err := e.samples.SleepSeries(ctx, days)
	if err != nil {
		return domain.SleepReport{}, err
	}
	durs := durations(series)
	scores := make([]float64, len(series))
	deeps := make([]float64, len(series))
	rems := make([]float64, len(series))
	bedtimes := make([]synthdomain.ClockTime, len(series))
	wakes := make([]synthdomain.ClockTime, len(series))
	best, worst := 0, 0
	for i, s := range series {
		scores[i] = float64(s.SleepScore)
		deeps[i] = s.DeepSleepHours
		rems[i] = s.REMSleepHours
		bedtimes[i] = s.Bedtime
		wakes[i] = s.WakeTime
		// Strict comparisons keep the first occurrence on ties.
		if s.SleepScore > series[best].SleepScore {
			best = i
		}
		if s.SleepScore < series[worst].SleepScore {
			worst = i
		}
	}
	debt := domain.AccumulateSleepDebt(durs)
	consistency := domain.ConsistencyScore(domain.ClockSpread(bedtimes), domain.ClockSpread(wakes))
	durationTrend := domain.ClassifySleepTrend(durs)

	report := domain.SleepReport{
		Period:        e.period(days, series[0].Date),
		LastNight:     series[len(series)-1],
		AvgDuration:   domain.Mean(durs),
		AvgDeep:       domain.Mean(deeps),
		AvgREM:        domain.Mean(rems),
		AvgScore:      domain.Mean(scores),
		AvgBedtime:    domain.ClockAverage(bedtimes),
		AvgWakeTime:   domain.ClockAverage(wakes),
		DurationTrend: durationTrend,
		ScoreTrend:    domain.ClassifySleepTrend(scores),
		Debt:          debt,
		Consistency:   consistency,
		BestNight:     series[best],
		WorstNight:    series[worst],
		Recent:        series[max(0, len(series)-recentSliceDays):],
	}
	report.Insights = sleepInsights(durationTrend, debt, consistency, report.AvgDuration)
	return report, nil
}

func (e *Engine) AlertCheck(ctx context.Context) (domain.AlertReport, error) {
	hrv, sleep, activity, err := e.freshWindow(ctx)
	if err != nil {
		return domain.AlertReport{}, err
	}
	evaluated := domain.EvaluateAlerts(
		hrv[len(hrv)-1].Value,
		sleep[len(sleep)-1].DurationHours,
		activity.Steps,
	)
	report := domain.AlertReport{
		GeneratedAt: e.clk.Now(),
		NextCheck:   e.clk.Today().AddDate(0, 0, 1).Add(8 * time.Hour),
	}
	for _, a := range evaluated {
		if a.Status == domain.AlertOK {
			report.Passing = append(report.Passing, a)
			continue
		}
		report.Active = append(report.Active, a)
		if plan, ok := domain.PlanForMetric(a.Metric); ok {
			report.Recommendations.Immediate = appendUnique(report.Recommendations.Immediate, plan.Immediate...)
			report.Recommendations.ShortTerm = appendUnique(report.Recommendations.ShortTerm, plan.ShortTerm...)
			report.Recommendations.LongTerm = appendUnique(report.Recommendations.LongTerm, plan.LongTerm...)
		}
	}
	if len(report.Active) == 0 {
		report.Summary = "All metrics within normal ranges"
	} else {
		report.Summary = fmt.Sprintf("%d of %d metrics need attention", len(report.Active), len(evaluated))
	}
	return report, nil
}

func (e *Engine) freshWindow(ctx context.Context) ([]synthdomain.DailyHRVSample, []synthdomain.DailySleepSample, synthdomain.ActivitySnapshot, error) {
	hrv, err := e.samples.HRVSeries(ctx, statusWindowDays)
	if err != nil {
		return nil, nil, synthdomain.ActivitySnapshot{}, err
	}
	sleep, err := e.samples.SleepSeries(ctx, statusWindowDays)
	if err != nil {
		return nil, nil, synthdomain.ActivitySnapshot{}, err
	}
	activity, err := e.samples.ActivitySnapshot(ctx)
	if err != nil {
		return nil, nil, synthdomain.ActivitySnapshot{}, err
	}
	return hrv, sleep, activity, nil
}

func (e *Engine) period(days int, start time.Time) domain.Period {
	return domain.Period{Days: days, Start: start, End: e.clk.Today()}
}

func statusSummary(category synthdomain.HRVCategory, sleepHours float64, steps int) string {
	recovery := map[synthdomain.HRVCategory]string{
		synthdomain.CategoryLow:    "Recovery is compromised",
		synthdomain.CategoryNormal: "Recovery on track",
		synthdomain.CategoryHigh:   "Recovery excellent",
	}[category]
	rest := "under-rested"
	switch {
	case sleepHours >= 8:
		rest = "fully rested"
	case sleepHours >= 7:
		rest = "adequately rested"
	}
	activity := "light activity so far"
	switch {
	case steps >= 10000:
		activity = "very active today"
	case steps >= 7500:
		activity = "moderately active today"
	}
	return fmt.Sprintf("%s, %s, %s.", recovery, rest, activity)
}

func statusRecommendations(category synthdomain.HRVCategory, sleepHours float64, steps int) []string {
	var recs []string
	if category == synthdomain.CategoryLow {
		recs = append(recs, "Prioritize rest and low-intensity movement today")
	}
	if sleepHours < 7 {
		recs = append(recs, "Aim for an earlier bedtime tonight")
	}
	if steps < 7500 {
		recs = append(recs, "Take a walk to close the step gap")
	}
	if len(recs) == 0 {
		recs = append(recs, "Maintain current habits")
	}
	return recs
}

func hrvInsights(trend domain.TrendResult, current synthdomain.HRVCategory, lowShare float64) []string {
	var insights []string
	switch trend.Direction {
	case domain.TrendImproving:
		insights = append(insights, "HRV is trending upward over the period")
	case domain.TrendDeclining:
		insights = append(insights, "HRV is trending downward over the period")
	case domain.TrendInsufficientData:
		insights = append(insights, "Not enough days to read a trend")
	default:
		insights = append(insights, "HRV is holding steady over the period")
	}
	switch current {
	case synthdomain.CategoryLow:
		insights = append(insights, "Current HRV is in the low band; prioritize recovery")
	case synthdomain.CategoryHigh:
		insights = append(insights, "Current HRV is in the high band")
	}
	if lowShare > 0.3 {
		insights = append(insights, "More than 30% of days fell in the low band")
	}
	return insights
}

func sleepInsights(durationTrend domain.TrendResult, debt domain.SleepDebt, consistency domain.SleepConsistency, avgDuration float64) []string {
	var insights []string
	switch durationTrend.Direction {
	case domain.TrendImproving:
		insights = append(insights, "Sleep duration is trending up")
	case domain.TrendDeclining:
		insights = append(insights, "Sleep duration is trending down")
	}
	if debt.Status == domain.DebtSignificant {
		insights = append(insights, fmt.Sprintf("Sleep debt of %.1f h is significant; plan recovery nights", debt.TotalHours))
	}
	if avgDuration < 7 {
		insights = append(insights, "Average sleep is below 7 h")
	}
	if consistency.Score >= 80 {
		insights = append(insights, "Sleep schedule is consistent")
	}
	if len(insights) == 0 {
		insights = append(insights, "Sleep patterns look stable")
	}
	return insights
}

func durations(series []synthdomain.DailySleepSample) []float64 {
	out := make([]float64, len(series))
	for i, s := range series {
		out[i] = s.DurationHours
	}
	return out
}

func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		seen := false
		for _, existing := range dst {
			if existing == item {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, item)
		}
	}
	return dst
}
