package domain_test

import (
	"testing"

	"vitals/internal/modules/analytics/domain"
)

func findAlert(t *testing.T, alerts []domain.AlertThreshold, metric string) domain.AlertThreshold {
	t.Helper()
	for _, a := range alerts {
		if a.Metric == metric {
			return a
		}
	}
	t.Fatalf("metric %s not evaluated", metric)
	return domain.AlertThreshold{}
}

// The HRV comparison is strictly below: exactly 30 is ok, 29 warns.
func TestHRVAlertBoundary(t *testing.T) {
	t.Parallel()
	atThreshold := findAlert(t, domain.EvaluateAlerts(30, 8, 9000), domain.MetricHRV)
	if atThreshold.Status != domain.AlertOK {
		t.Fatalf("hrv 30 status = %s, want ok", atThreshold.Status)
	}
	below := findAlert(t, domain.EvaluateAlerts(29, 8, 9000), domain.MetricHRV)
	if below.Status != domain.AlertWarning {
		t.Fatalf("hrv 29 status = %s, want warning", below.Status)
	}
	if below.Message == "" {
		t.Fatalf("warning must carry a message")
	}
}

func TestSleepAndStepRules(t *testing.T) {
	t.Parallel()
	alerts := domain.EvaluateAlerts(45, 5.5, 4200)
	if len(alerts) != 3 {
		t.Fatalf("evaluated %d rules, want the fixed 3", len(alerts))
	}
	if a := findAlert(t, alerts, domain.MetricSleepDuration); a.Status != domain.AlertWarning {
		t.Fatalf("sleep 5.5h status = %s, want warning", a.Status)
	}
	if a := findAlert(t, alerts, domain.MetricDailySteps); a.Status != domain.AlertWarning {
		t.Fatalf("steps 4200 status = %s, want warning", a.Status)
	}
	if a := findAlert(t, alerts, domain.MetricHRV); a.Status != domain.AlertOK {
		t.Fatalf("hrv 45 status = %s, want ok", a.Status)
	}
}

func TestNoRuleEmitsCritical(t *testing.T) {
	t.Parallel()
	// critical exists in the taxonomy but the fixed rules never produce it.
	for _, alerts := range [][]domain.AlertThreshold{
		domain.EvaluateAlerts(0, 0, 0),
		domain.EvaluateAlerts(80, 9, 15000),
	} {
		for _, a := range alerts {
			if a.Status == domain.AlertCritical {
				t.Fatalf("metric %s reported critical", a.Metric)
			}
		}
	}
}

func TestPlanForMetric(t *testing.T) {
	t.Parallel()
	for _, metric := range []string{domain.MetricHRV, domain.MetricSleepDuration, domain.MetricDailySteps} {
		plan, ok := domain.PlanForMetric(metric)
		if !ok {
			t.Fatalf("no plan for %s", metric)
		}
		if len(plan.Immediate) == 0 || len(plan.ShortTerm) == 0 || len(plan.LongTerm) == 0 {
			t.Fatalf("plan for %s missing a tier", metric)
		}
	}
	if _, ok := domain.PlanForMetric("blood_pressure"); ok {
		t.Fatalf("unknown metric should have no plan")
	}
}
