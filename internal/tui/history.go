package tui

import (
	"fmt"
	"strings"

	"pacecalc/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryModel is the calculation history screen model
type HistoryModel struct {
	svc      *service.CalculatorService
	entries  []service.HistoryEntry
	viewport viewport.Model
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewHistoryModel creates a new history model
func NewHistoryModel(svc *service.CalculatorService, width, height int) HistoryModel {
	m := HistoryModel{
		svc:     svc,
		loading: true,
		width:   width,
		height:  height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory
}

type historyLoadedMsg struct {
	entries []service.HistoryEntry
	err     error
}

func (m HistoryModel) loadHistory() tea.Msg {
	entries, err := m.svc.History()
	return historyLoadedMsg{entries: entries, err: err}
}

func (m HistoryModel) clearHistory() tea.Msg {
	if err := m.svc.ClearHistory(); err != nil {
		return historyLoadedMsg{err: err}
	}
	return m.loadHistory()
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if !m.loading {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadHistory
		case "c":
			m.loading = true
			return m, m.clearHistory
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading history..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh  c: clear")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m HistoryModel) renderContent() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("计算历史"))

	if !m.svc.HistoryEnabled() {
		lines = append(lines, inputHintStyle.Render("  History is disabled (history.enabled = false)."))
		return strings.Join(lines, "\n")
	}
	if len(m.entries) == 0 {
		lines = append(lines, inputHintStyle.Render("  No calculations yet. Submit a pace or speed to record one."))
		return strings.Join(lines, "\n")
	}

	col := func(w int) lipgloss.Style { return lipgloss.NewStyle().Width(w) }
	header := col(14).Render("输入") + col(10).Render("配速") + col(10).Render("时速") + col(12).Render("模式") + "时间"
	lines = append(lines, tableHeaderStyle.Render("  "+header))

	for _, e := range m.entries {
		row := col(14).Render(e.Input) +
			col(10).Render(e.Pace) +
			col(10).Render(e.Speed) +
			col(12).Render(e.Mode) +
			inputHintStyle.Render(e.Ago)
		lines = append(lines, "  "+row)
	}

	return strings.Join(lines, "\n")
}

// Entries returns the loaded history rows
func (m HistoryModel) Entries() []service.HistoryEntry {
	return m.entries
}
