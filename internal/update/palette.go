package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todomatic/internal/commands"
	"github.com/sandeepkv93/todomatic/internal/model"
	"go.uber.org/zap"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.addTask(a.Name)
			return commands.Result{Message: fmt.Sprintf("added %q", a.Name)}, nil
		},
		Toggle: func(r commands.RefArgs) (commands.Result, error) {
			task, err := m.resolveRef(r.Target)
			if err != nil {
				return commands.Result{}, err
			}
			m.toggleTask(task.ID)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(r commands.RefArgs) (commands.Result, error) {
			task, err := m.resolveRef(r.Target)
			if err != nil {
				return commands.Result{}, err
			}
			m.deleteTask(task.ID)
			if m.Status.IsError {
				return commands.Result{}, m.LastError
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Rename: func(r commands.RenameArgs) (commands.Result, error) {
			task, err := m.resolveRef(r.Target)
			if err != nil {
				return commands.Result{}, err
			}
			m.renameTask(task.ID, r.Name)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			name, err := model.ParseFilter(f.Name)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.setFilter(name)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Save: func() (commands.Result, error) {
			m.LastError = nil
			m.save()
			if m.LastError != nil {
				return commands.Result{}, m.LastError
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Clear: func() (commands.Result, error) {
			removed := m.clearCompleted()
			return commands.Result{Message: fmt.Sprintf("cleared %d completed task(s)", removed)}, nil
		},
		Copy: func(r commands.RefArgs) (commands.Result, error) {
			task, err := m.resolveRef(r.Target)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.clipboard.WriteAll(task.Name); err != nil {
				return commands.Result{}, fmt.Errorf("copy to clipboard: %w", err)
			}
			return commands.Result{Message: fmt.Sprintf("copied %q", task.Name)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Debug("palette command failed", zap.String("input", raw), zap.Error(err))
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}

// resolveRef maps a row number in the visible list, or an id, to a task.
func (m Model) resolveRef(ref commands.Ref) (model.Task, error) {
	if ref.Row > 0 {
		if ref.Row > len(m.Derived.Tasks) {
			return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task at row %d", ref.Row)}
		}
		return m.Derived.Tasks[ref.Row-1], nil
	}
	if task, ok := m.Store.Snapshot().Find(ref.ID); ok {
		return task, nil
	}
	return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id %s", ref.ID)}
}
