package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ya-breaker/internal/storage"
)

// RunsKeyMap defines the key bindings for the run report.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the stored run report.
type RunsModel struct {
	runs     []storage.RunRecord
	summary  *storage.Summary
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a run report over already loaded runs.
func NewRunsModel(runs []storage.RunRecord, summary *storage.Summary, width, height int) RunsModel {
	m := RunsModel{
		runs:    runs,
		summary: summary,
		help:    help.New(),
		keys:    DefaultRunsKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Seed", Width: 10},
		{Title: "Ticks", Width: 8},
		{Title: "Fails", Width: 6},
		{Title: "Gates", Width: 6},
		{Title: "Bricks", Width: 7},
		{Title: "Hits", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for title, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Fails),
			fmt.Sprintf("%d", r.Gates),
			fmt.Sprintf("%d", r.BricksBroken),
			fmt.Sprintf("%d", r.PaddleHits),
			date,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run report.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run report.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run report.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SIMULATION RUNS"))
	b.WriteString("\n")
	b.WriteString(m.summaryLine())
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs recorded yet.\nRun `yabreaker simulate` to add some.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summaryLine renders the aggregate numbers above the table.
func (m RunsModel) summaryLine() string {
	if m.summary == nil || m.summary.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  %d ticks  %.2f fails/1000 ticks  %.1f bricks/run  best rally %d hits",
		m.summary.Runs,
		m.summary.TotalTicks,
		m.summary.FailsPer1000Ticks(),
		m.summary.AvgBricks,
		m.summary.BestPaddleHits,
	)
}

// RunRuns shows the run report until the user quits.
func RunRuns(store *storage.Store, limit, width, height int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}
	summary, err := store.Summary()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewRunsModel(runs, summary, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

// RunDetail renders every field of one stored run as a bordered panel.
func RunDetail(r storage.RunRecord) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Width(14)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	date := "-"
	if !r.CreatedAt.IsZero() {
		date = r.CreatedAt.Format("2006-01-02 15:04:05")
	}

	fields := []struct {
		label string
		value string
	}{
		{"seed", fmt.Sprintf("%d", r.Seed)},
		{"spread", fmt.Sprintf("%.1f", r.Spread)},
		{"frames", fmt.Sprintf("%d", r.Frames)},
		{"ticks", fmt.Sprintf("%d", r.Ticks)},
		{"fails", fmt.Sprintf("%d", r.Fails)},
		{"gates", fmt.Sprintf("%d", r.Gates)},
		{"retries", fmt.Sprintf("%d", r.Retries)},
		{"bricks", fmt.Sprintf("%d", r.BricksBroken)},
		{"paddle hits", fmt.Sprintf("%d", r.PaddleHits)},
		{"bounces", fmt.Sprintf("%d", r.Bounces)},
		{"blocks left", fmt.Sprintf("%d", r.BlocksLeft)},
		{"recorded", date},
	}

	lines := []string{titleStyle.Render(fmt.Sprintf("RUN #%d", r.ID)), ""}
	for _, f := range fields {
		lines = append(lines, labelStyle.Render(f.label)+f.value)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
