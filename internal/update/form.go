package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func textinputBlink() tea.Cmd {
	return textinput.Blink
}

func (m Model) handleFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "tab", "esc":
		m.focusList()
		return m
	case "enter":
		m.submitForm()
		return m
	}
	var cmd tea.Cmd
	m.formInput, cmd = m.formInput.Update(msg)
	_ = cmd
	return m
}

// submitForm hands the typed name to the store. Blank input is ignored here;
// the store itself takes any name.
func (m *Model) submitForm() {
	name := m.formInput.Value()
	if strings.TrimSpace(name) == "" {
		m.Status = StatusBar{Text: "type a task name first"}
		return
	}
	m.addTask(name)
	m.formInput.SetValue("")
}

func (m *Model) focusForm() {
	m.Focus = FocusForm
	m.formInput.Focus()
}

func (m *Model) focusList() {
	m.Focus = FocusList
	m.formInput.Blur()
}
