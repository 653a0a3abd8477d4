package tui

import (
	"strings"

	"pacecalc/internal/pace"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	// Navigation section
	navSection := m.renderSection("Navigation", []keyHelp{
		{"f1", "Calculator"},
		{"f2", "History"},
		{"f3", "Help (this screen)"},
		{"esc", "Back / quit from the calculator"},
		{"q", "Quit (outside the calculator)"},
		{"ctrl+c", "Quit"},
	})
	sections = append(sections, navSection)

	// Calculator keys
	calcSection := m.renderSection("Calculator", []keyHelp{
		{"enter", "Submit"},
		{"ctrl+r", "Reset inputs and tables"},
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
	})
	sections = append(sections, calcSection)

	// History keys
	histSection := m.renderSection("History", []keyHelp{
		{"j / down", "Scroll down"},
		{"k / up", "Scroll up"},
		{"r", "Refresh"},
		{"c", "Clear history"},
	})
	sections = append(sections, histSection)

	sections = append(sections, m.renderInputHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderInputHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Inputs"))
	lines = append(lines, "")

	inputs := []struct {
		name string
		desc string
	}{
		{"配速 (pace)", "Minutes and seconds as digits: 630 = 6:30 /km, 1230 = 12:30 /km."},
		{"时速 (speed)", "Kilometres per hour as a decimal: 12.3."},
		{"Exclusive mode", "Fill exactly one field; filling both is an error."},
		{"Autofill mode", "The field you edited last wins and the other one is filled in."},
	}

	for _, in := range inputs {
		lines = append(lines, "  "+helpKeyStyle.Render(in.name))
		lines = append(lines, "  "+helpDescStyle.Render(in.desc))
		lines = append(lines, "")
	}

	distances := make([]string, 0, len(pace.Distances()))
	for _, d := range pace.Distances() {
		distances = append(distances, d.Label)
	}
	lines = append(lines, "  "+helpDescStyle.Render("Distances: "+strings.Join(distances, " ")))

	return strings.Join(lines, "\n")
}
