package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todomatic/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinputBlink(), func() tea.Msg { return ActivateMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.refresh()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case ActivateMsg:
		m.activate()
		return m, nil
	case AddTaskMsg:
		m.addTask(typed.Name)
		return m, nil
	case ToggleTaskMsg:
		m.toggleTask(typed.ID)
		return m, nil
	case DeleteTaskMsg:
		m.deleteTask(typed.ID)
		return m, nil
	case RenameTaskMsg:
		m.renameTask(typed.ID, typed.Name)
		return m, nil
	case SetFilterMsg:
		m.setFilter(typed.Filter)
		return m, nil
	case SaveMsg:
		m.save()
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.fail(typed.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.Editing.Active {
		return m.handleEditKey(msg), nil
	}
	if m.Focus == FocusForm {
		return m.handleFormKey(msg), nil
	}

	switch keyStr {
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.Save:
		m.save()
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m.handleListKey(msg), nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	title := "TodoMatic"
	if m.Unsaved() {
		title += " (unsaved changes, press s to save)"
	}

	buttons := make([]views.FilterButtonData, 0, len(m.Derived.Filters))
	for _, b := range m.Derived.Filters {
		buttons = append(buttons, views.FilterButtonData{Name: string(b.Name), Pressed: b.Pressed})
	}

	rows := make([]views.TaskRowData, 0, len(m.Derived.Tasks))
	for i, t := range m.Derived.Tasks {
		row := views.TaskRowData{Name: t.Name, Completed: t.Completed, Selected: i == m.Cursor}
		if m.Editing.Active && m.Editing.TaskID == t.ID {
			row.EditView = m.editInput.View()
		}
		rows = append(rows, row)
	}

	help := ""
	if m.HelpVisible {
		help = m.renderHelpView()
	}

	return views.RenderApp(views.AppData{
		Title:      title,
		Form:       views.RenderForm(m.formInput.View(), m.Focus == FocusForm),
		Filters:    views.RenderFilterButtons(buttons),
		Heading:    m.Derived.Heading,
		Focused:    m.Focus == FocusHeading,
		List:       views.RenderTaskList(views.TaskListData{Rows: rows, Focused: m.Focus != FocusForm}),
		Palette:    views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()),
		Help:       help,
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Footer:     m.footer(),
	})
}

func (m Model) footer() string {
	if m.Focus == FocusForm {
		return "keys: enter add | tab list | ctrl+c quit"
	}
	return strings.Join([]string{
		"keys: space toggle", "e edit", "d delete", "f filter",
		m.Keys.Save + " save", m.Keys.Palette + " cmd", "tab form",
		m.Keys.Help + " help", m.Keys.Quit + " quit",
	}, " | ")
}
