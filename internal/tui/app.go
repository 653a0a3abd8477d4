package tui

import (
	"pacecalc/internal/config"
	"pacecalc/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenCalculator Screen = iota
	ScreenHistory
	ScreenHelp
)

// Title is the application header
const Title = "马拉松配速计算器"

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	calculator CalculatorModel
	history    HistoryModel
	help       HelpModel

	// Services
	calcService *service.CalculatorService

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(calcService *service.CalculatorService, cfg *config.Config) *App {
	calculator := NewCalculatorModel(calcService, cfg.ShowChart())

	status := ""
	last, err := calcService.RestoreInputs()
	if err != nil {
		status = err.Error()
	} else {
		calculator = calculator.WithInputs(last)
	}

	return &App{
		screen:      ScreenCalculator,
		calcService: calcService,
		calculator:  calculator,
		history:     NewHistoryModel(calcService, 0, 0),
		help:        NewHelpModel(),
		status:      status,
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.calculator.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "f1":
			a.screen = ScreenCalculator
			return a, nil
		case "f2":
			return a, a.showHistory()
		case "f3":
			a.showHelp()
			return a, nil
		}

		// Single-letter keys belong to the text inputs on the calculator screen
		if a.screen == ScreenCalculator {
			if msg.String() == "esc" {
				return a, tea.Quit
			}
		} else {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenCalculator
				return a, nil
			case "2":
				if a.screen != ScreenHistory {
					return a, a.showHistory()
				}
			case "?":
				a.showHelp()
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
				} else {
					a.screen = ScreenCalculator
				}
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// History keeps its viewport sized even while hidden
		m, cmd := a.history.Update(msg)
		a.history = m.(HistoryModel)
		if a.screen == ScreenHistory {
			return a, cmd
		}

	case CalculatedMsg:
		a.status = ""
		return a, nil

	case historyLoadedMsg:
		// Load results arrive even if the user already switched away
		m, cmd := a.history.Update(msg)
		a.history = m.(HistoryModel)
		return a, cmd
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenCalculator:
		var m tea.Model
		m, cmd = a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

func (a *App) showHistory() tea.Cmd {
	a.screen = ScreenHistory
	a.history = NewHistoryModel(a.calcService, a.width, a.height)
	return a.history.Init()
}

func (a *App) showHelp() {
	if a.screen != ScreenHelp {
		a.prevScreen = a.screen
	}
	a.screen = ScreenHelp
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenCalculator:
		content = a.calculator.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render(Title)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"f1", "计算", ScreenCalculator},
		{"f2", "历史", ScreenHistory},
		{"f3", "帮助", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[ctrl+c] 退出")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

// Calculator returns the calculator screen model
func (a *App) Calculator() CalculatorModel {
	return a.calculator
}
