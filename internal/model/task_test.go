package model

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask("buy milk")
	if task.Name != "buy milk" {
		t.Fatalf("unexpected name: %q", task.Name)
	}
	if task.Completed {
		t.Fatal("expected new task to be active")
	}
	if !strings.HasPrefix(task.ID, "todo-") {
		t.Fatalf("expected todo- prefix, got %q", task.ID)
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestNewTaskIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := NewTaskID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestTaskValidateMissingID(t *testing.T) {
	err := Task{Name: "no id"}.Validate()
	if err == nil || !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got: %v", err)
	}
	if err := (Task{ID: "todo-1", Name: ""}).Validate(); err != nil {
		t.Fatalf("empty name should be accepted, got: %v", err)
	}
}

func TestTaskToggledAndRenamedReturnCopies(t *testing.T) {
	orig := Task{ID: "todo-1", Name: "a"}
	toggled := orig.Toggled()
	if !toggled.Completed || orig.Completed {
		t.Fatalf("toggle should copy: orig=%+v toggled=%+v", orig, toggled)
	}
	if toggled.Toggled().Completed {
		t.Fatal("double toggle should restore original state")
	}
	renamed := orig.Renamed("b")
	if renamed.Name != "b" || orig.Name != "a" || renamed.ID != orig.ID {
		t.Fatalf("unexpected rename result: orig=%+v renamed=%+v", orig, renamed)
	}
}
