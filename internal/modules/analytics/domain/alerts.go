package domain

import "fmt"

type AlertStatus string

const (
	AlertOK       AlertStatus = "ok"
	AlertWarning  AlertStatus = "warning"
	AlertCritical AlertStatus = "critical"
)

const (
	MetricHRV           = "hrv"
	MetricSleepDuration = "sleep_duration"
	MetricDailySteps    = "daily_steps"
)

const (
	HRVWarningThreshold   = 30.0
	SleepWarningThreshold = 6.0
	StepsWarningThreshold = 5000.0
)

type AlertThreshold struct {
	Metric    string
	Threshold float64
	Current   float64
	Status    AlertStatus
	Message   string
}

// EvaluateAlerts applies the three fixed below-threshold rules. Comparisons
// are strict: a value exactly at the threshold is ok.
func EvaluateAlerts(hrv, sleepHours float64, steps int) []AlertThreshold {
	return []AlertThreshold{
		rule(MetricHRV, HRVWarningThreshold, hrv,
			fmt.Sprintf("HRV %.0f ms is below the %.0f ms baseline", hrv, HRVWarningThreshold),
			fmt.Sprintf("HRV %.0f ms within normal range", hrv)),
		rule(MetricSleepDuration, SleepWarningThreshold, sleepHours,
			fmt.Sprintf("Sleep duration %.1f h is below the %.0f h minimum", sleepHours, SleepWarningThreshold),
			fmt.Sprintf("Sleep duration %.1f h within normal range", sleepHours)),
		rule(MetricDailySteps, StepsWarningThreshold, float64(steps),
			fmt.Sprintf("Daily steps %d below the %.0f step goal", steps, StepsWarningThreshold),
			fmt.Sprintf("Daily steps %d within normal range", steps)),
	}
}

func rule(metric string, threshold, current float64, warnMsg, okMsg string) AlertThreshold {
	at := AlertThreshold{Metric: metric, Threshold: threshold, Current: current}
	if current < threshold {
		at.Status = AlertWarning
		at.Message = warnMsg
	} else {
		at.Status = AlertOK
		at.Message = okMsg
	}
	return at
}

// RecommendationTier groups advice for a triggered metric by urgency.
type RecommendationTier struct {
	Immediate []string
	ShortTerm []string
	LongTerm  []string
}

var recommendationPlans = map[string]RecommendationTier{
	MetricHRV: {
		Immediate: []string{"Take a rest day or keep intensity low"},
		ShortTerm: []string{"Prioritize sleep and hydration this week"},
		LongTerm:  []string{"Track stressors alongside HRV to find patterns"},
	},
	MetricSleepDuration: {
		Immediate: []string{"Plan an earlier bedtime tonight"},
		ShortTerm: []string{"Keep a fixed wake time for the next week"},
		LongTerm:  []string{"Build a wind-down routine before bed"},
	},
	MetricDailySteps: {
		Immediate: []string{"Take a short walk today"},
		ShortTerm: []string{"Schedule walking breaks into your day"},
		LongTerm:  []string{"Work toward a consistent daily step goal"},
	},
}

// PlanForMetric returns the fixed advice table entry for a metric.
func PlanForMetric(metric string) (RecommendationTier, bool) {
	plan, ok := recommendationPlans[metric]
	return plan, ok
}
