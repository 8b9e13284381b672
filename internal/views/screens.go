package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type FilterButtonData struct {
	Name    string
	Pressed bool
}

type TaskRowData struct {
	Name      string
	Completed bool
	Selected  bool
	EditView  string
}

type TaskListData struct {
	Rows    []TaskRowData
	Focused bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Guide    string
}

var (
	pressedStyle  = lipgloss.NewStyle().Reverse(true).Bold(true)
	buttonStyle   = lipgloss.NewStyle().Faint(true)
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func RenderForm(inputView string, focused bool) string {
	label := "What needs to be done?"
	if focused {
		label += " [enter] add"
	}
	return label + "\n" + inputView
}

// RenderFilterButtons draws one button per filter; aria-pressed becomes reverse video.
func RenderFilterButtons(buttons []FilterButtonData) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		label := fmt.Sprintf("[ %s ]", b.Name)
		if b.Pressed {
			parts = append(parts, pressedStyle.Render(label))
			continue
		}
		parts = append(parts, buttonStyle.Render(label))
	}
	return "show: " + strings.Join(parts, " ")
}

func RenderTaskList(data TaskListData) string {
	if len(data.Rows) == 0 {
		return "  (nothing here)"
	}
	var b strings.Builder
	for i, row := range data.Rows {
		cursor := " "
		if row.Selected && data.Focused {
			cursor = ">"
		}
		box := "[ ]"
		if row.Completed {
			box = "[x]"
		}
		name := row.Name
		if row.EditView != "" {
			name = "New name for " + row.Name + ": " + row.EditView
		} else if row.Completed {
			name = doneStyle.Render(name)
		}
		line := fmt.Sprintf("%s %d. %s %s", cursor, i+1, box, name)
		if row.Selected && data.Focused {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n\n" + data.HelpView)
	}
	if data.Guide != "" {
		b.WriteString("\n\n" + data.Guide)
	}
	return strings.TrimSpace(b.String())
}
