package tui

import "github.com/charmbracelet/bubbles/key"

// calculatorKeys are the bindings active on the calculator screen
type calculatorKeys struct {
	Submit    key.Binding
	Reset     key.Binding
	NextField key.Binding
	PrevField key.Binding
	History   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newCalculatorKeys() calculatorKeys {
	return calculatorKeys{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "提交")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "重置")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "下一项")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "上一项")),
		History:   key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "历史")),
		Help:      key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "帮助")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "退出")),
	}
}

// ShortHelp implements help.KeyMap
func (k calculatorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Reset, k.NextField, k.History, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k calculatorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Reset},
		{k.NextField, k.PrevField},
		{k.History, k.Help, k.Quit},
	}
}
