package tui

import (
	"errors"
	"strings"
	"testing"

	"pacecalc/internal/config"
	"pacecalc/internal/pace"
	"pacecalc/internal/service"
	"pacecalc/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestService(t *testing.T, mode pace.Mode) *service.CalculatorService {
	t.Helper()

	db, err := store.NewTestStore()
	if err != nil {
		t.Fatalf("NewTestStore() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return service.NewCalculatorService(pace.NewCalculator(mode, pace.RoundHalfEven), db, 10)
}

func typeText(m CalculatorModel, text string) CalculatorModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(CalculatorModel)
}

func press(m CalculatorModel, k tea.KeyType) (CalculatorModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(CalculatorModel), cmd
}

func TestCalculatorModel_SubmitPace(t *testing.T) {
	m := NewCalculatorModel(newTestService(t, pace.ModeExclusive), true)

	m = typeText(m, "630")
	m, cmd := press(m, tea.KeyEnter)

	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
	res := m.Result()
	if res == nil {
		t.Fatal("Result() = nil after submit")
	}
	if res.Pace != 6.5 {
		t.Errorf("Pace = %v, want 6.5", res.Pace)
	}
	if cmd == nil {
		t.Fatal("submit should return a command")
	}
	if msg, ok := cmd().(CalculatedMsg); !ok || msg.Result.Pace != 6.5 {
		t.Errorf("command produced %#v, want CalculatedMsg", msg)
	}

	view := m.View()
	for _, want := range []string{"00:06:30", "全马", "可跑距离（km）", "配速 6:30 /km"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestCalculatorModel_BothFieldsError(t *testing.T) {
	m := NewCalculatorModel(newTestService(t, pace.ModeExclusive), false)

	m = typeText(m, "500")
	m, _ = press(m, tea.KeyEnter)
	if m.Result() == nil {
		t.Fatal("first submit should succeed")
	}

	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "12")
	m, _ = press(m, tea.KeyEnter)

	if !errors.Is(m.Err(), pace.ErrBothFieldsFilled) {
		t.Fatalf("Err() = %v, want ErrBothFieldsFilled", m.Err())
	}
	if m.Result() == nil || m.Result().Pace != 5 {
		t.Errorf("previous result should stay on screen")
	}

	view := m.View()
	if !strings.Contains(view, pace.ErrorTitle) || !strings.Contains(view, pace.ErrBothFieldsFilled.Message) {
		t.Errorf("View() should show the error title and message")
	}
	if !strings.Contains(view, "00:05:00") {
		t.Errorf("View() should still show the previous tables")
	}
}

func TestCalculatorModel_AutoFillFromSpeed(t *testing.T) {
	m := NewCalculatorModel(newTestService(t, pace.ModeAutoFill), false)

	m = typeText(m, "630")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "12")
	m, _ = press(m, tea.KeyEnter)

	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
	paceText, speedText := m.Inputs()
	if paceText != "500" || speedText != "12" {
		t.Errorf("Inputs() = %q, %q; want 500, 12", paceText, speedText)
	}
	if got := m.Result().Distances[9].Value; got != "03:30:58" {
		t.Errorf("marathon = %q, want 03:30:58", got)
	}
}

func TestCalculatorModel_AutoFillResubmit(t *testing.T) {
	m := NewCalculatorModel(newTestService(t, pace.ModeAutoFill), false)

	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "12")
	m, _ = press(m, tea.KeyEnter)
	if m.Err() != nil {
		t.Fatalf("first submit error = %v", m.Err())
	}

	m, _ = press(m, tea.KeyEnter)
	if m.Err() != nil {
		t.Fatalf("second submit error = %v", m.Err())
	}
	paceText, speedText := m.Inputs()
	if paceText != "500" || speedText != "12" {
		t.Errorf("Inputs() = %q, %q; want 500, 12", paceText, speedText)
	}
	if m.Result().Source != pace.FieldSpeed {
		t.Errorf("Source = %v, want speed", m.Result().Source)
	}
}

func TestCalculatorModel_Reset(t *testing.T) {
	m := NewCalculatorModel(newTestService(t, pace.ModeExclusive), false)

	m = typeText(m, "445")
	m, _ = press(m, tea.KeyEnter)
	if m.Result() == nil {
		t.Fatal("submit should succeed")
	}

	m, _ = press(m, tea.KeyCtrlR)

	if m.Result() != nil {
		t.Error("Result() should be nil after reset")
	}
	paceText, speedText := m.Inputs()
	if paceText != "" || speedText != "" {
		t.Errorf("Inputs() = %q, %q; want empty", paceText, speedText)
	}
	if strings.Contains(m.View(), pace.DistanceHeader) {
		t.Error("View() should not show tables after reset")
	}
}

func TestApp_Navigation(t *testing.T) {
	svc := newTestService(t, pace.ModeExclusive)
	cfg := config.DefaultConfig()
	app := NewApp(svc, &cfg)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	for _, r := range "1230" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if res := app.Calculator().Result(); res == nil || res.Pace != 12.5 {
		t.Fatalf("calculator result = %+v, want pace 12.5", res)
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyF2})
	if app.Screen() != ScreenHistory {
		t.Fatalf("Screen() = %v, want history", app.Screen())
	}
	if cmd == nil {
		t.Fatal("switching to history should load entries")
	}
	app.Update(cmd())

	view := app.View()
	if !strings.Contains(view, "配速 1230") {
		t.Errorf("history view should list the submit, got:\n%s", view)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if app.Screen() != ScreenHelp {
		t.Fatalf("Screen() = %v, want help", app.Screen())
	}
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.Screen() != ScreenHistory {
		t.Errorf("esc from help should go back to history, got %v", app.Screen())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	if app.Screen() != ScreenCalculator {
		t.Errorf("Screen() = %v, want calculator", app.Screen())
	}
}

func TestApp_RestoresLastInputs(t *testing.T) {
	svc := newTestService(t, pace.ModeExclusive)
	if _, err := svc.Submit(pace.Input{SpeedText: "10"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	app := NewApp(svc, &cfg)

	paceText, speedText := app.Calculator().Inputs()
	if paceText != "" || speedText != "10" {
		t.Errorf("Inputs() = %q, %q; want empty, 10", paceText, speedText)
	}
}

func TestApp_RestoredAutoFillSubmits(t *testing.T) {
	svc := newTestService(t, pace.ModeAutoFill)
	if _, err := svc.Submit(pace.Input{SpeedText: "12", Edited: pace.FieldSpeed}); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Calculator.Mode = "autofill"
	app := NewApp(svc, &cfg)

	paceText, speedText := app.Calculator().Inputs()
	if paceText != "500" || speedText != "12" {
		t.Fatalf("Inputs() = %q, %q; want 500, 12", paceText, speedText)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if err := app.Calculator().Err(); err != nil {
		t.Fatalf("submit of restored inputs error = %v", err)
	}
	if res := app.Calculator().Result(); res == nil || res.Pace != 5 {
		t.Errorf("Result() = %+v, want pace 5", res)
	}
}

func TestUnits(t *testing.T) {
	u := NewUnits(pace.RoundHalfEven)

	if got := u.FormatPace(6.5); got != "6:30 /km" {
		t.Errorf("FormatPace(6.5) = %q", got)
	}
	if got := u.FormatSpeed(12); got != "12.0 km/h" {
		t.Errorf("FormatSpeed(12) = %q", got)
	}
	if got := u.FormatPace(0); got != "-" {
		t.Errorf("FormatPace(0) = %q, want -", got)
	}
	res := pace.Result{Pace: 6.5, Speed: 60 / 6.5}
	if got := u.Summary(res); got != "配速 6:30 /km · 时速 9.2 km/h" {
		t.Errorf("Summary() = %q", got)
	}
}
