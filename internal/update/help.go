package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/todomatic/internal/views"
)

const guideMarkdown = `# TodoMatic

Type a task and press **enter** to add it. Press **tab** to move between the
form and the list.

## Palette

- ` + "`add <name>`" + `
- ` + "`toggle <row|id>`" + `, ` + "`delete <row|id>`" + `
- ` + "`rename <row|id> <name>`" + `
- ` + "`filter all|active|completed`" + `
- ` + "`save`" + `, ` + "`clear`" + `, ` + "`copy <row|id>`" + `

Deleting a task also clears the saved list. Press **s** to save again.
`

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.globalBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	list := toKeyBindings(m.listBindings())
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: list,
			full:  [][]key.Binding{list},
		}),
		Guide: m.guideView.View(),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "tab", Action: "switch form / list"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Save, Action: "save tasks"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) listBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "j/k", Action: "move"},
		{Key: "space", Action: "toggle done"},
		{Key: "e", Action: "edit name"},
		{Key: "d", Action: "delete"},
		{Key: "y", Action: "copy name"},
		{Key: "f/F", Action: "next/prev filter"},
		{Key: "1/2/3", Action: "all/active/completed"},
		{Key: "C", Action: "clear completed"},
	}
}

func toKeyBindings(in []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(in))
	for _, kb := range in {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
