package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrMissingID = errors.New("model: task id is required")

const taskIDPrefix = "todo-"

type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// NewTask returns an uncompleted task with a freshly generated id.
func NewTask(name string) Task {
	return Task{ID: NewTaskID(), Name: name}
}

func NewTaskID() string {
	return taskIDPrefix + uuid.NewString()
}

// Validate only checks identity. Names are free-form, empty included.
func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	return nil
}

func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}

func (t Task) Renamed(name string) Task {
	t.Name = name
	return t
}
