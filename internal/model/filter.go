package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFilter = errors.New("model: unknown filter")

type Filter string

const (
	FilterAll       Filter = "All"
	FilterActive    Filter = "Active"
	FilterCompleted Filter = "Completed"
)

type Predicate func(Task) bool

var filterOrder = []Filter{FilterAll, FilterActive, FilterCompleted}

var predicates = map[Filter]Predicate{
	FilterAll:       func(Task) bool { return true },
	FilterActive:    func(t Task) bool { return !t.Completed },
	FilterCompleted: func(t Task) bool { return t.Completed },
}

func (f Filter) IsValid() bool {
	_, ok := predicates[f]
	return ok
}

// Predicate falls back to All for an unknown filter.
func (f Filter) Predicate() Predicate {
	if p, ok := predicates[f]; ok {
		return p
	}
	return predicates[FilterAll]
}

func (f Filter) Next() Filter {
	for i, name := range filterOrder {
		if name == f {
			return filterOrder[(i+1)%len(filterOrder)]
		}
	}
	return FilterAll
}

func (f Filter) Prev() Filter {
	for i, name := range filterOrder {
		if name == f {
			return filterOrder[(i+len(filterOrder)-1)%len(filterOrder)]
		}
	}
	return FilterAll
}

func FilterNames() []Filter {
	out := make([]Filter, len(filterOrder))
	copy(out, filterOrder)
	return out
}

func ParseFilter(raw string) (Filter, error) {
	trimmed := strings.TrimSpace(raw)
	for _, name := range filterOrder {
		if strings.EqualFold(string(name), trimmed) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, raw)
}

func Apply(tasks []Task, f Filter) []Task {
	keep := f.Predicate()
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
