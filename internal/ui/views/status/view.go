package status

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

type StatusPort interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Status dto.StatusOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    StatusPort
	status  dto.StatusOutput
	err     error
	spinner spinner.Model
	loading bool
	width   int
}

func New(port StatusPort) Model {
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
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case LoadedMsg:
		m.loading = false
		m.status, m.err = msg.Status, msg.Err
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
		out, err := m.port.Status(context.Background())
		return LoadedMsg{Status: out, Err: err}
	}
}

func (m Model) View() string {
	if m.loading {
		return m.spinner.View() + " generating snapshot..."
	}
	if m.err != nil {
		return theme.Bad.Render("status failed: " + m.err.Error())
	}
	s := m.status

	var b strings.Builder
	b.WriteString(theme.Title.Render("Today — "+s.Date) + "\n\n")
	b.WriteString(fmt.Sprintf("HRV        %s  %s\n",
		theme.Title.Render(fmt.Sprintf("%.0f ms", s.HRV.Value)),
		theme.Muted.Render(s.HRV.Category)))
	b.WriteString(fmt.Sprintf("Sleep      %.1f h  score %d  (7d avg %.1f h)\n",
		s.LastNight.DurationHours, s.LastNight.SleepScore, s.SleepAvg7d))
	b.WriteString(fmt.Sprintf("Activity   %d steps  %d kcal  %d min\n\n",
		s.Activity.Steps, s.Activity.ActiveCalories, s.Activity.ExerciseMinutes))
	b.WriteString(s.Summary + "\n")

	if len(s.Alerts) > 0 {
		b.WriteString("\n")
		for _, a := range s.Alerts {
			b.WriteString(theme.Warn.Render("! "+a) + "\n")
		}
	}
	for _, r := range s.Recommendations {
		b.WriteString(theme.Muted.Render("• "+r) + "\n")
	}
	b.WriteString("\n" + theme.Muted.Render("r refresh"))
	return theme.Pane.Render(b.String())
}
