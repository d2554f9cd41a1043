package dto

type PeriodOutput struct {
	Days  int    `json:"days"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type TrendOutput struct {
	Direction     string  `json:"direction"`
	Change        float64 `json:"change"`
	ChangePercent int     `json:"change_percent,omitempty"`
	Significance  string  `json:"significance"`
}

type HRVSampleOutput struct {
	Date     string  `json:"date"`
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

type SleepSampleOutput struct {
	Date           string  `json:"date"`
	DurationHours  float64 `json:"duration_hours"`
	DeepSleepHours float64 `json:"deep_sleep_hours"`
	RemSleepHours  float64 `json:"rem_sleep_hours"`
	SleepScore     int     `json:"sleep_score"`
	Bedtime        string  `json:"bedtime"`
	WakeTime       string  `json:"wake_time"`
}

type ActivityOutput struct {
	Steps           int `json:"steps"`
	ActiveCalories  int `json:"active_calories"`
	ExerciseMinutes int `json:"exercise_minutes"`
}

type StatusOutput struct {
	Date            string            `json:"date"`
	HRV             HRVSampleOutput   `json:"hrv"`
	LastNight       SleepSampleOutput `json:"last_night"`
	SleepAvg7d      float64           `json:"sleep_avg_7d"`
	Activity        ActivityOutput    `json:"activity"`
	Alerts          []string          `json:"alerts"`
	Summary         string            `json:"summary"`
	Recommendations []string          `json:"recommendations"`
}

type DistributionOutput struct {
	Low    int `json:"low"`
	Normal int `json:"normal"`
	High   int `json:"high"`
}

type HRVReportOutput struct {
	Period       PeriodOutput       `json:"period"`
	Current      float64            `json:"current"`
	Average      float64            `json:"average"`
	Min          float64            `json:"min"`
	Max          float64            `json:"max"`
	StdDev       float64            `json:"std_dev"`
	Trend        TrendOutput        `json:"trend"`
	Distribution DistributionOutput `json:"distribution"`
	Recent       []HRVSampleOutput  `json:"recent"`
	Insights     []string           `json:"insights"`
}

type SleepDebtOutput struct {
	TotalHours float64 `json:"total_hours"`
	Status     string  `json:"status"`
}

type ConsistencyOutput struct {
	BedtimeVarianceMinutes float64 `json:"bedtime_variance_minutes"`
	WakeVarianceMinutes    float64 `json:"wake_variance_minutes"`
	Score                  float64 `json:"score"`
}

type SleepReportOutput struct {
	Period        PeriodOutput        `json:"period"`
	LastNight     SleepSampleOutput   `json:"last_night"`
	AvgDuration   float64             `json:"avg_duration_hours"`
	AvgDeep       float64             `json:"avg_deep_sleep_hours"`
	AvgREM        float64             `json:"avg_rem_sleep_hours"`
	AvgScore      float64             `json:"avg_sleep_score"`
	AvgBedtime    string              `json:"avg_bedtime"`
	AvgWakeTime   string              `json:"avg_wake_time"`
	DurationTrend TrendOutput         `json:"duration_trend"`
	ScoreTrend    TrendOutput         `json:"score_trend"`
	Debt          SleepDebtOutput     `json:"sleep_debt"`
	Consistency   ConsistencyOutput   `json:"consistency"`
	BestNight     SleepSampleOutput   `json:"best_night"`
	WorstNight    SleepSampleOutput   `json:"worst_night"`
	Recent        []SleepSampleOutput `json:"recent"`
	Insights      []string            `json:"insights"`
}

type AlertOutput struct {
	Metric    string  `json:"metric"`
	Threshold float64 `json:"threshold"`
	Current   float64 `json:"current"`
	Status    string  `json:"status"`
	Message   string  `json:"message"`
}

type RecommendationsOutput struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

type AlertReportOutput struct {
	GeneratedAt     string                `json:"generated_at"`
	Active          []AlertOutput         `json:"active"`
	Passing         []AlertOutput         `json:"passing"`
	Summary         string                `json:"summary"`
	Recommendations RecommendationsOutput `json:"recommendations"`
	NextCheck       string                `json:"next_check"`
}
