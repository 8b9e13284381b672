package update

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/todomatic/internal/config"
	"github.com/sandeepkv93/todomatic/internal/model"
	"github.com/sandeepkv93/todomatic/internal/storage"
	"github.com/sandeepkv93/todomatic/internal/store"
	"github.com/sandeepkv93/todomatic/internal/viewstate"
	"github.com/sandeepkv93/todomatic/internal/views"
	"go.uber.org/zap"
)

type FocusTarget string

const (
	FocusForm    FocusTarget = "form"
	FocusList    FocusTarget = "list"
	FocusHeading FocusTarget = "heading"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Help    string
	Palette string
	Save    string
	Quit    string
}

type EditState struct {
	Active bool
	TaskID string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Deps are the collaborators a Model is wired to. Nil fields fall back to
// an in-memory store, no persistence, a no-op logger and the system clipboard.
type Deps struct {
	Store     *store.Store
	Snapshots *storage.Snapshots
	Logger    *zap.Logger
	Clipboard Clipboard
	Config    config.RuntimeConfig
}

type Model struct {
	Store       *store.Store
	Derived     viewstate.View
	Focus       FocusTarget
	Cursor      int
	Editing     EditState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Loaded      bool
	Quitting    bool
	LastError   error

	tracker       viewstate.FocusTracker
	savedTasks    []model.Task
	snapshots     *storage.Snapshots
	logger        *zap.Logger
	clipboard     Clipboard
	clearOnDelete bool

	formInput    textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
	guideView    viewport.Model
}

type AddTaskMsg struct {
	Name string
}

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID string
}

type RenameTaskMsg struct {
	ID   string
	Name string
}

type SetFilterMsg struct {
	Filter model.Filter
}

type SaveMsg struct{}

// ActivateMsg triggers the one-time read of the saved snapshot.
type ActivateMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel() Model {
	return NewModelWithDeps(Deps{Config: config.DefaultRuntimeConfig()})
}

func NewModelWithDeps(deps Deps) Model {
	m := Model{
		Store:         deps.Store,
		Focus:         FocusForm,
		snapshots:     deps.Snapshots,
		logger:        deps.Logger,
		clipboard:     deps.Clipboard,
		clearOnDelete: deps.Config.ClearOnDelete,
		Keys: GlobalKeyMap{
			Help:    "?",
			Palette: "/",
			Save:    "s",
			Quit:    "q",
		},
	}
	if m.Store == nil {
		m.Store = store.New()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.clipboard == nil {
		m.clipboard = systemClipboard{}
	}
	m.initBubbleComponents(deps.Config.InputCharLimit)
	m.savedTasks = m.Store.Snapshot().Tasks
	m.refresh()
	return m
}

func (m *Model) initBubbleComponents(charLimit int) {
	if charLimit <= 0 {
		charLimit = 256
	}
	m.formInput = textinput.New()
	m.formInput.Prompt = "> "
	m.formInput.Placeholder = "task name"
	m.formInput.CharLimit = charLimit
	m.formInput.Width = 48
	m.formInput.Focus()

	m.editInput = textinput.New()
	m.editInput.Prompt = ""
	m.editInput.CharLimit = charLimit
	m.editInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
	m.guideView = viewport.New(46, 14)
	m.guideView.SetContent(views.RenderMarkdown(guideMarkdown, 44))
}
