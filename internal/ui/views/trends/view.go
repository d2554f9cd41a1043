package trends

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitals/internal/modules/analytics/dto"
	"vitals/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TrendsPort interface {
	HRVReport(ctx context.Context, days int) (dto.HRVReportOutput, error)
	SleepReport(ctx context.Context, days int) (dto.SleepReportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type HRVLoadedMsg struct {
	Report dto.HRVReportOutput
	Err    error
}

type SleepLoadedMsg struct {
	Report dto.SleepReportOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type metric int

const (
	metricHRV metric = iota
	metricSleep
)

var windows = []int{7, 30, 90}

type Model struct {
	port      TrendsPort
	metric    metric
	windowIdx int
	hrv       dto.HRVReportOutput
	sleep     dto.SleepReportOutput
	err       error
	spinner   spinner.Model
	loading   bool
}

func New(port TrendsPort, defaultDays int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	m := Model{port: port, spinner: sp, loading: true}
	for i, w := range windows {
		if w == defaultDays {
			m.windowIdx = i
		}
	}
	return m
}

func (m Model) days() int {
	return windows[m.windowIdx]
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case HRVLoadedMsg:
		m.loading = false
		m.hrv, m.err = msg.Report, msg.Err
	case SleepLoadedMsg:
		m.loading = false
		m.sleep, m.err = msg.Report, msg.Err
	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			if m.metric == metricHRV {
				m.metric = metricSleep
			} else {
				m.metric = metricHRV
			}
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "w":
			m.windowIdx = (m.windowIdx + 1) % len(windows)
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	days := m.days()
	if m.metric == metricHRV {
		return func() tea.Msg {
			out, err := m.port.HRVReport(context.Background(), days)
			return HRVLoadedMsg{Report: out, Err: err}
		}
	}
	return func() tea.Msg {
		out, err := m.port.SleepReport(context.Background(), days)
		return SleepLoadedMsg{Report: out, Err: err}
	}
}

func (m Model) View() string {
	if m.loading {
		return m.spinner.View() + " computing trends..."
	}
	if m.err != nil {
		return theme.Bad.Render("trend report failed: " + m.err.Error())
	}
	var body string
	if m.metric == metricHRV {
		body = m.hrvView()
	} else {
		body = m.sleepView()
	}
	footer := theme.Muted.Render(fmt.Sprintf("window %dd  ·  m metric  w window", m.days()))
	return theme.Pane.Render(body + "\n" + footer)
}

func (m Model) hrvView() string {
	r := m.hrv
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("HRV %s → %s", r.Period.Start, r.Period.End)) + "\n\n")
	b.WriteString(fmt.Sprintf("current %.0f ms   avg %.1f   min %.0f   max %.0f   σ %.1f\n",
		r.Current, r.Average, r.Min, r.Max, r.StdDev))
	b.WriteString(trendLine(r.Trend) + "\n")
	b.WriteString(fmt.Sprintf("days: %d low / %d normal / %d high\n\n",
		r.Distribution.Low, r.Distribution.Normal, r.Distribution.High))
	for _, ins := range r.Insights {
		b.WriteString(theme.Muted.Render("• "+ins) + "\n")
	}
	return b.String()
}

func (m Model) sleepView() string {
	r := m.sleep
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Sleep %s → %s", r.Period.Start, r.Period.End)) + "\n\n")
	b.WriteString(fmt.Sprintf("avg %.1f h   deep %.1f   rem %.1f   score %.0f\n",
		r.AvgDuration, r.AvgDeep, r.AvgREM, r.AvgScore))
	b.WriteString(fmt.Sprintf("typical night %s → %s   consistency %.0f\n",
		r.AvgBedtime, r.AvgWakeTime, r.Consistency.Score))
	b.WriteString(fmt.Sprintf("debt %.1f h (%s)\n", r.Debt.TotalHours, r.Debt.Status))
	b.WriteString("duration " + trendLine(r.DurationTrend) + "   score " + trendLine(r.ScoreTrend) + "\n\n")
	for _, ins := range r.Insights {
		b.WriteString(theme.Muted.Render("• "+ins) + "\n")
	}
	return b.String()
}

func trendLine(t dto.TrendOutput) string {
	label := fmt.Sprintf("%s (%+.1f, %s)", t.Direction, t.Change, t.Significance)
	switch t.Direction {
	case "improving":
		return theme.Good.Render(label)
	case "declining":
		return theme.Warn.Render(label)
	default:
		return theme.Muted.Render(label)
	}
}
