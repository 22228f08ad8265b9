// Package app is the screen router that mounts the dashboard. It owns the
// login gate and forwards everything else to the active screen. The dashboard
// is mounted exactly once, on the first successful login.
package app

import (
	"strings"

	"echomart/cmd/echomart/dashboard"
	"echomart/cmd/echomart/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies the active view.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
)

// Model routes messages between the login gate and the dashboard.
type Model struct {
	screen Screen
	styles ui.Styles

	nameInput textinput.Model
	dash      dashboard.Model

	width  int
	height int
}

// New constructs the router with an unmounted dashboard behind the login
// gate.
func New(dash dashboard.Model, styles ui.Styles) Model {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = "> "
	name.CharLimit = 64
	name.Width = 24
	name.Focus()

	return Model{
		screen:    ScreenLogin,
		styles:    styles,
		nameInput: name,
		dash:      dash,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Window sizes reach both screens so the dashboard is ready when mounted.
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		next, _ := m.dash.Update(size)
		m.dash = next.(dashboard.Model)
		return m, nil
	}

	if m.screen == ScreenDashboard {
		next, cmd := m.dash.Update(msg)
		m.dash = next.(dashboard.Model)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			// Any non-empty name proceeds; there is no credential check.
			if strings.TrimSpace(m.nameInput.Value()) == "" {
				return m, nil
			}
			m.screen = ScreenDashboard
			return m, m.dash.Init()
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.screen == ScreenDashboard {
		return m.dash.View()
	}

	return m.styles.Content.Render(
		m.styles.Title.Render("EchoMart") + "\n\n" +
			m.styles.Body.Render("Sign in to browse the store.") + "\n\n" +
			m.nameInput.View() + "\n\n" +
			m.styles.Muted.Render("enter continue · esc quit"),
	)
}
