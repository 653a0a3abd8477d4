package tui

import (
	"strings"

	"pacecalc/internal/pace"
	"pacecalc/internal/service"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Input hints shown next to each field
const (
	paceHint  = "格式: 630, 500 ..."
	speedHint = "格式: 12.3, 13 ..."
)

const (
	fieldPace = iota
	fieldSpeed
)

// CalculatorModel is the pace calculator screen model
type CalculatorModel struct {
	svc       *service.CalculatorService
	units     Units
	showChart bool

	inputs [2]textinput.Model
	focus  int
	edited pace.Field

	result  *pace.Result
	err     error
	warning string

	keys calculatorKeys
	help help.Model
}

// NewCalculatorModel creates a new calculator model
func NewCalculatorModel(svc *service.CalculatorService, showChart bool) CalculatorModel {
	paceInput := textinput.New()
	paceInput.Placeholder = "配速（min/km）"
	paceInput.Prompt = "> "
	paceInput.CharLimit = 8
	paceInput.Width = 18

	speedInput := textinput.New()
	speedInput.Placeholder = "时速（km/h）"
	speedInput.Prompt = "> "
	speedInput.CharLimit = 8
	speedInput.Width = 18

	m := CalculatorModel{
		svc:       svc,
		units:     NewUnits(svc.Session().Calculator().Rounding),
		showChart: showChart,
		inputs:    [2]textinput.Model{paceInput, speedInput},
		keys:      newCalculatorKeys(),
		help:      help.New(),
	}
	m.inputs[fieldPace].Focus()
	return m
}

// WithInputs pre-fills both fields, e.g. with the inputs of the previous run
func (m CalculatorModel) WithInputs(in pace.Input) CalculatorModel {
	m.inputs[fieldPace].SetValue(in.PaceText)
	m.inputs[fieldSpeed].SetValue(in.SpeedText)
	m.edited = in.Edited
	return m
}

// Init initializes the calculator screen
func (m CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// CalculatedMsg is sent after a successful submit
type CalculatedMsg struct {
	Result pace.Result
}

// Update handles messages
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Reset):
			return m.reset(), nil
		case key.Matches(msg, m.keys.NextField):
			return m.setFocus((m.focus + 1) % len(m.inputs)), nil
		case key.Matches(msg, m.keys.PrevField):
			return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs)), nil
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.edited = fieldTag(m.focus)
	}
	return m, cmd
}

func (m CalculatorModel) submit() (tea.Model, tea.Cmd) {
	out, err := m.svc.Submit(pace.Input{
		PaceText:  m.inputs[fieldPace].Value(),
		SpeedText: m.inputs[fieldSpeed].Value(),
		Edited:    m.edited,
	})
	if err != nil {
		// previous tables stay on screen
		m.err = err
		return m, nil
	}

	res := out.Result
	m.err = nil
	m.warning = ""
	if out.HistoryErr != nil {
		m.warning = out.HistoryErr.Error()
	}
	m.result = &res
	m.inputs[fieldPace].SetValue(res.PaceText)
	m.inputs[fieldSpeed].SetValue(res.SpeedText)
	// the source stays authoritative until the user edits a field
	m.edited = res.Source

	return m, func() tea.Msg { return CalculatedMsg{Result: res} }
}

func (m CalculatorModel) reset() CalculatorModel {
	if err := m.svc.Reset(); err != nil {
		m.warning = err.Error()
	} else {
		m.warning = ""
	}
	m.inputs[fieldPace].Reset()
	m.inputs[fieldSpeed].Reset()
	m.result = nil
	m.err = nil
	m.edited = pace.FieldNone
	return m.setFocus(fieldPace)
}

func (m CalculatorModel) setFocus(i int) CalculatorModel {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m
}

// View renders the calculator screen
func (m CalculatorModel) View() string {
	sections := []string{
		m.renderInputs(),
		m.renderStatus(),
	}

	if m.result != nil {
		sections = append(sections, m.renderTables())
		if m.showChart {
			sections = append(sections, m.renderChart())
		}
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CalculatorModel) renderInputs() string {
	paceRow := lipgloss.JoinHorizontal(lipgloss.Center,
		inputLabelStyle.Render("配速："),
		m.inputs[fieldPace].View(),
		"  ",
		inputHintStyle.Render(paceHint),
	)
	speedRow := lipgloss.JoinHorizontal(lipgloss.Center,
		inputLabelStyle.Render("时速："),
		m.inputs[fieldSpeed].View(),
		"  ",
		inputHintStyle.Render(speedHint),
	)
	return lipgloss.JoinVertical(lipgloss.Left, paceRow, speedRow)
}

func (m CalculatorModel) renderStatus() string {
	var lines []string

	if m.err != nil {
		lines = append(lines, errorTitleStyle.Render(pace.ErrorTitle))
		lines = append(lines, errorStyle.Render(m.err.Error()))
	} else if m.result != nil {
		lines = append(lines, successStyle.Render(m.units.Summary(*m.result)))
	}
	if m.warning != "" {
		lines = append(lines, warningStyle.Render("历史记录失败: "+m.warning))
	}

	if len(lines) == 0 {
		return ""
	}
	return statusStyle.Render(strings.Join(lines, "\n"))
}

func (m CalculatorModel) renderTables() string {
	return RenderResultTables(*m.result)
}

// RenderResultTables lays out the distance and time tables side by side
func RenderResultTables(res pace.Result) string {
	distance := RenderTable(
		[2]string{pace.DistanceHeader, pace.ElapsedTimeHeader},
		toCells(res.Distances),
		[2]int{10, 18},
	)
	times := RenderTable(
		[2]string{pace.DurationHeader, pace.DistanceKmHeader},
		toCells(res.Times),
		[2]int{10, 16},
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cardTitleStyle.Render(pace.DistanceTableTitle), distance)),
		" ",
		cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cardTitleStyle.Render(pace.TimeTableTitle), times)),
	)
}

func (m CalculatorModel) renderChart() string {
	graph := asciigraph.Plot(service.DistanceSeries(m.result.Pace),
		asciigraph.Height(8),
		asciigraph.Width(50),
		asciigraph.Precision(1),
		asciigraph.Caption("可跑距离 (km): 1分 → 120分"),
	)
	return cardStyle.Render(graph)
}

// Result returns the result currently on screen, or nil
func (m CalculatorModel) Result() *pace.Result {
	return m.result
}

// Err returns the validation error currently on screen, or nil
func (m CalculatorModel) Err() error {
	return m.err
}

// Inputs returns the current field text
func (m CalculatorModel) Inputs() (paceText, speedText string) {
	return m.inputs[fieldPace].Value(), m.inputs[fieldSpeed].Value()
}

func fieldTag(i int) pace.Field {
	if i == fieldSpeed {
		return pace.FieldSpeed
	}
	return pace.FieldPace
}

func toCells(rows []pace.Row) [][2]string {
	cells := make([][2]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, [2]string{r.Label, r.Value})
	}
	return cells
}
