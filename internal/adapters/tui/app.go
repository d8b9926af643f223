package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"spyglass/internal/adapters/tui/views"
	"spyglass/internal/application"
	"spyglass/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewInspector ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state     ViewState
	inspector *views.InspectorModel
	help      *views.HelpModel

	width  int
	height int
}

// NewApp creates the TUI application over a JSON file. Engine options
// (adapters, page size, markers) pass through to the inspector's engine.
func NewApp(accessor ports.Accessor, path string, opts ...application.Option) *App {
	return &App{
		state:     ViewInspector,
		inspector: views.NewInspectorModel(accessor, path, opts...),
		help:      views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.inspector.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.inspector.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToInspectorMsg:
		a.state = ViewInspector
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.inspector.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.inspector.View()
	}
}
