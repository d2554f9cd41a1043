package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitals/internal/modules/analytics/dto"
	"vitals/internal/ui/theme"
	alertsview "vitals/internal/ui/views/alerts"
	statusview "vitals/internal/ui/views/status"
	trendsview "vitals/internal/ui/views/trends"
)

// ─── port ────────────────────────────────────────────────────────────────────
// The dashboard needs the full analytics surface; sub-views narrow it.

type analyticsPort interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
	HRVReport(ctx context.Context, days int) (dto.HRVReportOutput, error)
	SleepReport(ctx context.Context, days int) (dto.SleepReportOutput, error)
	AlertCheck(ctx context.Context) (dto.AlertReportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabStatus tabID = iota
	tabTrends
	tabAlerts
	tabCount
)

var tabLabels = [tabCount]string{"Status", "Trends", "Alerts"}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab  key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.Help, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	tab    tabID
	status statusview.Model
	trends trendsview.Model
	alerts alertsview.Model
	keys   keyMap
	help   help.Model
	width  int
	height int
}

func NewModel(port analyticsPort, defaultDays int) Model {
	return Model{
		status: statusview.New(port),
		trends: trendsview.New(port, defaultDays),
		alerts: alertsview.New(port),
		keys:   defaultKeys(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.status.Init(), m.trends.Init(), m.alerts.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		// Remaining keys go to the active view only.
		return m.updateActive(msg)
	}
	// Async and tick messages fan out to every view.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)
	m.trends, cmd = m.trends.Update(msg)
	cmds = append(cmds, cmd)
	m.alerts, cmd = m.alerts.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case tabStatus:
		m.status, cmd = m.status.Update(msg)
	case tabTrends:
		m.trends, cmd = m.trends.Update(msg)
	case tabAlerts:
		m.alerts, cmd = m.alerts.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	tabs := make([]string, tabCount)
	for i, label := range tabLabels {
		if tabID(i) == m.tab {
			tabs[i] = theme.TabActive.Render(label)
		} else {
			tabs[i] = theme.TabInactive.Render(label)
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch m.tab {
	case tabStatus:
		body = m.status.View()
	case tabTrends:
		body = m.trends.View()
	case tabAlerts:
		body = m.alerts.View()
	}

	var b strings.Builder
	b.WriteString(header + "\n\n")
	b.WriteString(body + "\n")
	b.WriteString(m.help.View(m.keys))
	return theme.App.Render(b.String())
}
