package update

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sandeepkv93/todomatic/internal/model"
	"github.com/sandeepkv93/todomatic/internal/storage"
	"github.com/sandeepkv93/todomatic/internal/viewstate"
	"go.uber.org/zap"
)

const storageTimeout = 2 * time.Second

var errNoStorage = errors.New("no storage configured")

func (m *Model) addTask(name string) model.Task {
	task := m.Store.Add(name)
	m.logger.Debug("task added", zap.String("id", task.ID), zap.String("name", name))
	m.Status = StatusBar{Text: fmt.Sprintf("added %q", name)}
	return task
}

func (m *Model) toggleTask(id string) bool {
	if !m.Store.Toggle(id) {
		return false
	}
	task, _ := m.Store.Snapshot().Find(id)
	m.logger.Debug("task toggled", zap.String("id", id), zap.Bool("completed", task.Completed))
	if task.Completed {
		m.Status = StatusBar{Text: fmt.Sprintf("completed %q", task.Name)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("reopened %q", task.Name)}
	}
	return true
}

// deleteTask drops the task and, unless disabled, the saved snapshot with it.
// Tasks still in memory stay unsaved until the next explicit save.
func (m *Model) deleteTask(id string) bool {
	task, ok := m.Store.Snapshot().Find(id)
	if !ok || !m.Store.Delete(id) {
		return false
	}
	m.logger.Debug("task deleted", zap.String("id", id))
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", task.Name)}
	if m.clearOnDelete && m.snapshots != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		if err := m.snapshots.Clear(ctx); err != nil {
			m.fail(fmt.Errorf("clear saved tasks: %w", err))
			return true
		}
		m.savedTasks = []model.Task{}
		m.logger.Info("saved snapshot cleared after delete")
	}
	return true
}

func (m *Model) renameTask(id, name string) bool {
	before, ok := m.Store.Snapshot().Find(id)
	if !ok || !m.Store.Rename(id, name) {
		return false
	}
	m.logger.Debug("task renamed", zap.String("id", id), zap.String("from", before.Name), zap.String("to", name))
	m.Status = StatusBar{Text: fmt.Sprintf("renamed %q to %q", before.Name, name)}
	return true
}

func (m *Model) setFilter(f model.Filter) {
	if !f.IsValid() {
		m.Status = StatusBar{Text: fmt.Sprintf("unknown filter: %s", f), IsError: true}
		return
	}
	m.Store.SetFilter(f)
	m.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("showing %s tasks", f)}
}

func (m *Model) clearCompleted() int {
	removed := m.Store.ClearCompleted()
	if removed > 0 {
		m.logger.Debug("completed tasks cleared", zap.Int("removed", removed))
	}
	return removed
}

func (m *Model) save() {
	if m.snapshots == nil {
		m.fail(errNoStorage)
		return
	}
	tasks := m.Store.Snapshot().Tasks
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := m.snapshots.Save(ctx, tasks); err != nil {
		m.fail(fmt.Errorf("save tasks: %w", err))
		return
	}
	m.savedTasks = tasks
	m.logger.Info("tasks saved", zap.Int("count", len(tasks)))
	m.Status = StatusBar{Text: fmt.Sprintf("saved %d task(s)", len(tasks))}
}

// activate loads the saved snapshot once. Corrupt data is reported and the
// list starts empty; the stored value is only replaced by the next save.
func (m *Model) activate() {
	if m.Loaded {
		return
	}
	m.Loaded = true
	if m.snapshots == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	tasks, err := m.snapshots.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCorruptSnapshot) {
			m.logger.Warn("discarding unreadable saved tasks", zap.Error(err))
			m.Status = StatusBar{Text: "saved tasks were unreadable; starting with an empty list", IsError: true}
			return
		}
		m.fail(fmt.Errorf("load tasks: %w", err))
		return
	}
	if len(tasks) == 0 {
		return
	}
	m.Store.Replace(tasks)
	m.savedTasks = m.Store.Snapshot().Tasks
	m.logger.Info("tasks loaded", zap.Int("count", len(tasks)))
	m.Status = StatusBar{Text: fmt.Sprintf("loaded %d task(s)", len(tasks))}
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.logger.Error("operation failed", zap.Error(err))
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

// Unsaved reports whether the in-memory list differs from what was last
// loaded or saved.
func (m Model) Unsaved() bool {
	return !slices.Equal(m.savedTasks, m.Store.Snapshot().Tasks)
}

// refresh rebuilds the derived view and runs the heading focus check. It
// runs once per update, i.e. once per render.
func (m *Model) refresh() {
	snap := m.Store.Snapshot()
	m.Derived = viewstate.Build(snap)
	if m.Cursor >= len(m.Derived.Tasks) {
		m.Cursor = len(m.Derived.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.tracker.Observe(len(snap.Tasks)) {
		m.focusHeading()
	}
}

func (m *Model) focusHeading() {
	m.Focus = FocusHeading
	m.formInput.Blur()
	m.editInput.Blur()
	m.Editing = EditState{}
}

func (m Model) selectedTask() (model.Task, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Derived.Tasks) {
		return model.Task{}, false
	}
	return m.Derived.Tasks[m.Cursor], true
}
