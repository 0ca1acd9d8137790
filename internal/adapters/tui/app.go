package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"figlens/internal/adapters/tui/views"
	"figlens/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPalette ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state   ViewState
	palette *views.PaletteModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application for one design file
func NewApp(source ports.FileSource, fileKey string) *App {
	return &App{
		state:   ViewPalette,
		palette: views.NewPaletteModel(source, fileKey),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.palette.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.palette.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPaletteMsg:
		a.state = ViewPalette
		return a, nil
	}

	switch a.state {
	case ViewHelp:
		_, cmd := a.help.Update(msg)
		return a, cmd
	default:
		_, cmd := a.palette.Update(msg)
		return a, cmd
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.palette.View()
	}
}
