package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Title      string
	Form       string
	Filters    string
	Heading    string
	Focused    bool
	List       string
	Palette    string
	Help       string
	StatusLine string
	StatusErr  bool
	Footer     string
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	heading := headingStyle.Render(data.Heading)
	if data.Focused {
		heading = focusStyle.Render("» " + data.Heading)
	}
	body := strings.Join([]string{data.Form, data.Filters, heading, data.List}, "\n")
	if data.Palette != "" {
		body += "\n\n" + data.Palette
	}

	main := panelStyle.Width(64).Render(body)
	if data.Help != "" {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, panelStyle.Width(48).Render(data.Help))
	}

	status := statusLineStyle(data.StatusErr).Render(data.StatusLine)

	lines := []string{titleStyle.Render(data.Title), main, status}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func statusLineStyle(isErr bool) lipgloss.Style {
	if isErr {
		return errorStyle
	}
	return statusStyle
}

func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
