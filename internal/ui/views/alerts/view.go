package alerts

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitals/internal/modules/analytics/dto"
	"vitals/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AlertsPort interface {
	AlertCheck(ctx context.Context) (dto.AlertReportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Report dto.AlertReportOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    AlertsPort
	report  dto.AlertReportOutput
	err     error
	spinner spinner.Model
	loading bool
}

func New(port AlertsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		m.report, m.err = msg.Report, msg.Err
	case tea.KeyMsg:
		if msg.String() == "r" {
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
	return func() tea.Msg {
		out, err := m.port.AlertCheck(context.Background())
		return LoadedMsg{Report: out, Err: err}
	}
}

func (m Model) View() string {
	if m.loading {
		return m.spinner.View() + " checking thresholds..."
	}
	if m.err != nil {
		return theme.Bad.Render("alert check failed: " + m.err.Error())
	}
	r := m.report

	var b strings.Builder
	b.WriteString(theme.Title.Render("Alerts") + "  " + theme.Muted.Render(r.GeneratedAt) + "\n\n")
	b.WriteString(r.Summary + "\n\n")
	for _, a := range r.Active {
		b.WriteString(theme.ForAlertStatus(a.Status).Render("! "+a.Message) + "\n")
	}
	for _, a := range r.Passing {
		b.WriteString(theme.Good.Render("✓ "+a.Message) + "\n")
	}
	b.WriteString(renderTier("now", r.Recommendations.Immediate))
	b.WriteString(renderTier("this week", r.Recommendations.ShortTerm))
	b.WriteString(renderTier("long term", r.Recommendations.LongTerm))
	b.WriteString("\n" + theme.Muted.Render("next check "+r.NextCheck+"  ·  r refresh"))
	return theme.Pane.Render(b.String())
}

func renderTier(label string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + theme.Title.Render(label) + "\n")
	for _, item := range items {
		b.WriteString(theme.Muted.Render("• "+item) + "\n")
	}
	return b.String()
}
