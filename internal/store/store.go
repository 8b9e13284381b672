// Package store owns the in-memory task list and filter selection.
//
// Every mutation builds a fresh Snapshot; snapshots handed out earlier are
// never modified. Subscribers are called synchronously after each change.
package store

import (
	"github.com/sandeepkv93/todomatic/internal/model"
)

type Snapshot struct {
	Tasks   []model.Task
	Filter  model.Filter
	Version int
}

// Find returns the task with the given id.
func (s Snapshot) Find(id string) (model.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

type Counts struct {
	Total     int
	Active    int
	Completed int
}

func (s Snapshot) Counts() Counts {
	c := Counts{Total: len(s.Tasks)}
	for _, t := range s.Tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

type Listener func(Snapshot)

type Store struct {
	snap      Snapshot
	listeners map[int]Listener
	order     []int
	nextSub   int
}

func New() *Store {
	return &Store{
		snap:      Snapshot{Tasks: []model.Task{}, Filter: model.FilterAll},
		listeners: make(map[int]Listener),
	}
}

func (s *Store) Snapshot() Snapshot {
	return s.snap
}

func (s *Store) Counts() Counts {
	return s.snap.Counts()
}

// Subscribe registers fn for future changes. The returned func unsubscribes.
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	return func() {
		delete(s.listeners, id)
		for i, sid := range s.order {
			if sid == id {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) Add(name string) model.Task {
	task := model.NewTask(name)
	next := make([]model.Task, 0, len(s.snap.Tasks)+1)
	next = append(next, s.snap.Tasks...)
	next = append(next, task)
	s.commit(next, s.snap.Filter)
	return task
}

func (s *Store) Toggle(id string) bool {
	return s.mapTask(id, model.Task.Toggled)
}

func (s *Store) Rename(id, name string) bool {
	return s.mapTask(id, func(t model.Task) model.Task { return t.Renamed(name) })
}

func (s *Store) Delete(id string) bool {
	next := make([]model.Task, 0, len(s.snap.Tasks))
	for _, t := range s.snap.Tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(s.snap.Tasks) {
		return false
	}
	s.commit(next, s.snap.Filter)
	return true
}

// ClearCompleted removes every completed task and reports how many went.
func (s *Store) ClearCompleted() int {
	next := model.Apply(s.snap.Tasks, model.FilterActive)
	removed := len(s.snap.Tasks) - len(next)
	if removed > 0 {
		s.commit(next, s.snap.Filter)
	}
	return removed
}

func (s *Store) SetFilter(f model.Filter) {
	if !f.IsValid() || f == s.snap.Filter {
		return
	}
	s.commit(s.snap.Tasks, f)
}

// Replace swaps in a whole task list, typically one read back from storage.
// Duplicate ids keep their first occurrence and missing ids are generated.
func (s *Store) Replace(tasks []model.Task) {
	next := make([]model.Task, 0, len(tasks))
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.Validate() != nil {
			t.ID = model.NewTaskID()
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		next = append(next, t)
	}
	s.commit(next, s.snap.Filter)
}

func (s *Store) mapTask(id string, fn func(model.Task) model.Task) bool {
	found := false
	next := make([]model.Task, len(s.snap.Tasks))
	for i, t := range s.snap.Tasks {
		if t.ID == id {
			t = fn(t)
			found = true
		}
		next[i] = t
	}
	if !found {
		return false
	}
	s.commit(next, s.snap.Filter)
	return true
}

func (s *Store) commit(tasks []model.Task, f model.Filter) {
	s.snap = Snapshot{Tasks: tasks, Filter: f, Version: s.snap.Version + 1}
	for _, id := range s.order {
		if fn := s.listeners[id]; fn != nil {
			fn(s.snap)
		}
	}
}
