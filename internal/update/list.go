package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todomatic/internal/model"
)

// handleListKey serves both list and heading focus; any list action moves
// focus back onto the list.
func (m Model) handleListKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "tab", "i", "a":
		m.focusForm()
		return m
	case "up", "k":
		m.Focus = FocusList
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		m.Focus = FocusList
		if m.Cursor < len(m.Derived.Tasks)-1 {
			m.Cursor++
		}
	case " ", "x":
		m.Focus = FocusList
		if task, ok := m.selectedTask(); ok {
			m.toggleTask(task.ID)
		}
	case "d", "delete":
		m.Focus = FocusList
		if task, ok := m.selectedTask(); ok {
			m.deleteTask(task.ID)
		}
	case "e", "enter":
		m.Focus = FocusList
		m.startEditing()
	case "y":
		m.Focus = FocusList
		if task, ok := m.selectedTask(); ok {
			m.copyTask(task)
		}
	case "f", "right", "l":
		m.setFilter(m.Store.Snapshot().Filter.Next())
	case "F", "left", "h":
		m.setFilter(m.Store.Snapshot().Filter.Prev())
	case "1", "2", "3":
		names := model.FilterNames()
		m.setFilter(names[int(msg.String()[0]-'1')])
	case "C":
		removed := m.clearCompleted()
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %d completed task(s)", removed)}
	}
	return m
}

func (m *Model) startEditing() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	m.Editing = EditState{Active: true, TaskID: task.ID}
	m.editInput.SetValue(task.Name)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	m.Status = StatusBar{Text: fmt.Sprintf("editing %q", task.Name)}
}

func (m Model) handleEditKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Editing = EditState{}
		m.editInput.Blur()
		m.Status = StatusBar{Text: "edit cancelled"}
		return m
	case "enter":
		id := m.Editing.TaskID
		m.Editing = EditState{}
		m.editInput.Blur()
		m.renameTask(id, m.editInput.Value())
		m.editInput.SetValue("")
		return m
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	_ = cmd
	return m
}

func (m *Model) copyTask(task model.Task) {
	if err := m.clipboard.WriteAll(task.Name); err != nil {
		m.fail(fmt.Errorf("copy to clipboard: %w", err))
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("copied %q", task.Name)}
}
