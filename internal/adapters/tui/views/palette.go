package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"figlens/internal/adapters/tui/styles"
	"figlens/internal/application"
	"figlens/internal/application/commands"
	"figlens/internal/domain"
	"figlens/internal/ports"
)

// PaletteKeyMap defines key bindings for the palette browser
type PaletteKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var PaletteKeys = PaletteKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "enter"),
		key.WithHelp("c", "copy hex"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PaletteModel is the model for the palette browser view. Tab 0 shows the
// file-wide palette; the following tabs show one page each.
type PaletteModel struct {
	ViewState

	source  ports.FileSource
	fileKey string

	report  *application.PaletteReport
	loading bool
	pageIdx int
	cursor  int
}

// NewPaletteModel creates a new palette browser model
func NewPaletteModel(source ports.FileSource, fileKey string) *PaletteModel {
	return &PaletteModel{
		source:  source,
		fileKey: fileKey,
		loading: true,
	}
}

// Init initializes the palette browser
func (m *PaletteModel) Init() tea.Cmd {
	return m.loadReport
}

func (m *PaletteModel) loadReport() tea.Msg {
	report, err := commands.NewPaletteCommand(m.source, m.fileKey).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return reportLoadedMsg{report}
}

type reportLoadedMsg struct {
	report *application.PaletteReport
}

type errMsg struct {
	err error
}

// Update handles messages for the palette browser
func (m *PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case reportLoadedMsg:
		m.report = msg.report
		m.loading = false
		m.pageIdx = 0
		m.cursor = 0
		m.ClearMessage()
		return m, nil

	case errMsg:
		m.loading = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *PaletteModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PaletteKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, PaletteKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, PaletteKeys.Reload):
		m.loading = true
		return m, m.loadReport

	case key.Matches(msg, PaletteKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, PaletteKeys.Down):
		if m.cursor < len(m.entries())-1 {
			m.cursor++
		}

	case key.Matches(msg, PaletteKeys.PrevPage):
		if m.pageIdx > 0 {
			m.pageIdx--
			m.cursor = 0
			m.ClearMessage()
		}

	case key.Matches(msg, PaletteKeys.NextPage):
		if m.report != nil && m.pageIdx < len(m.report.Pages) {
			m.pageIdx++
			m.cursor = 0
			m.ClearMessage()
		}

	case key.Matches(msg, PaletteKeys.Copy):
		entries := m.entries()
		if m.cursor < len(entries) {
			hex := entries[m.cursor].Hex
			if err := clipboard.WriteAll(hex); err != nil {
				m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.SetMessage(fmt.Sprintf("copied %s", hex), false)
			}
		}
	}
	return m, nil
}

// entries returns the palette shown on the current tab.
func (m *PaletteModel) entries() []domain.PaletteEntry {
	if m.report == nil {
		return nil
	}
	if m.pageIdx == 0 {
		return m.report.Palette
	}
	return m.report.Pages[m.pageIdx-1].Palette
}

// View renders the palette browser
func (m *PaletteModel) View() string {
	var b strings.Builder

	title := "figlens"
	if m.report != nil && m.report.FileName != "" {
		title = m.report.FileName
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(styles.Subtitle.Render("Fetching file..."))
		b.WriteString("\n")
		return styles.App.Render(b.String())
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	entries := m.entries()
	if len(entries) == 0 {
		b.WriteString(styles.MutedText.Render("No solid fills found."))
		b.WriteString("\n")
	}
	for i, entry := range entries {
		line := fmt.Sprintf("%s  %-9s %s",
			styles.Swatch(entry.Hex),
			entry.Hex,
			styles.EntryCount.Render(fmt.Sprintf("×%d", entry.Count)),
		)
		if i == m.cursor {
			line = styles.EntrySelected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.StatusBar.Render("j/k move  h/l page  c copy  r reload  ? help  q quit"))

	return styles.App.Render(b.String())
}

func (m *PaletteModel) renderTabs() string {
	if m.report == nil {
		return ""
	}
	tabs := []string{renderTab("All", m.pageIdx == 0)}
	for i, page := range m.report.Pages {
		tabs = append(tabs, renderTab(page.PageName, m.pageIdx == i+1))
	}
	return strings.Join(tabs, " ")
}

func renderTab(name string, active bool) string {
	if active {
		return styles.PageTabActive.Render(name)
	}
	return styles.PageTab.Render(name)
}
