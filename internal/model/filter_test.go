package model

import (
	"errors"
	"testing"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "todo-1", Name: "A", Completed: true},
		{ID: "todo-2", Name: "B"},
		{ID: "todo-3", Name: "C", Completed: true},
		{ID: "todo-4", Name: "D"},
	}
}

func names(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Name)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	cases := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"A", "B", "C", "D"}},
		{FilterActive, []string{"B", "D"}},
		{FilterCompleted, []string{"A", "C"}},
	}
	for _, tc := range cases {
		got := names(Apply(sampleTasks(), tc.filter))
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.filter, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got %v, want %v", tc.filter, got, tc.want)
			}
		}
	}
}

func TestFilterNamesOrder(t *testing.T) {
	got := FilterNames()
	if len(got) != 3 || got[0] != FilterAll || got[1] != FilterActive || got[2] != FilterCompleted {
		t.Fatalf("unexpected filter order: %v", got)
	}
	got[0] = "mutated"
	if FilterNames()[0] != FilterAll {
		t.Fatal("FilterNames must return a copy")
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("  active ")
	if err != nil || f != FilterActive {
		t.Fatalf("expected Active, got %q err=%v", f, err)
	}
	_, err = ParseFilter("done")
	if err == nil || !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("expected ErrUnknownFilter, got: %v", err)
	}
}

func TestFilterCycle(t *testing.T) {
	if FilterAll.Next() != FilterActive || FilterCompleted.Next() != FilterAll {
		t.Fatal("unexpected Next cycle")
	}
	if FilterAll.Prev() != FilterCompleted || FilterActive.Prev() != FilterAll {
		t.Fatal("unexpected Prev cycle")
	}
	if Filter("bogus").Next() != FilterAll {
		t.Fatal("unknown filter should reset to All")
	}
}
