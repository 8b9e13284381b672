// Package viewstate derives what the screen shows from a store snapshot.
package viewstate

import (
	"fmt"

	"github.com/sandeepkv93/todomatic/internal/model"
	"github.com/sandeepkv93/todomatic/internal/store"
)

type FilterButton struct {
	Name    model.Filter
	Pressed bool
}

type View struct {
	Tasks   []model.Task
	Heading string
	Filters []FilterButton
	Counts  store.Counts
}

func Build(snap store.Snapshot) View {
	visible := model.Apply(snap.Tasks, snap.Filter)
	names := model.FilterNames()
	buttons := make([]FilterButton, 0, len(names))
	for _, name := range names {
		buttons = append(buttons, FilterButton{Name: name, Pressed: name == snap.Filter})
	}
	return View{
		Tasks:   visible,
		Heading: Heading(len(visible)),
		Filters: buttons,
		Counts:  snap.Counts(),
	}
}

func Heading(n int) string {
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s remaining", n, noun)
}
