package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleKeyMsg processes keyboard input for the Update() function. Returns
// (model, cmd, handled) where handled=false means the key was not consumed
// and should fall through to the focused text input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	// Global keybindings
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit, true

	case tea.KeyCtrlE:
		// Chat bubble: toggle the panel. Transcript and draft live in the
		// session, so close/open round-trips preserve them.
		if m.chat.IsOpen() {
			m.chat.Close()
			m.focus = FocusList
			m.chatInput.Blur()
		} else {
			m.chat.Open()
			m.focus = FocusChat
			m.searchInput.Blur()
			m.chatInput.Focus()
			m.refreshChatView()
		}
		return m, nil, true
	}

	// Chat panel keybindings
	if m.focus == FocusChat && m.chat.IsOpen() {
		switch msg.Type {
		case tea.KeyEsc:
			m.chat.Close()
			m.focus = FocusList
			m.chatInput.Blur()
			return m, nil, true

		case tea.KeyEnter:
			// Affirmative key in the draft input: same path as the explicit
			// send action below.
			return m.submitChat(), nil, true

		case tea.KeyCtrlS:
			return m.submitChat(), nil, true

		case tea.KeyCtrlL:
			m.chat.Clear()
			m.refreshChatView()
			return m, nil, true
		}
		return m, nil, false
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit, true

	case tea.KeyTab:
		if m.focus == FocusSearch {
			m.focus = FocusList
			m.searchInput.Blur()
		} else {
			m.focus = FocusSearch
			m.searchInput.Focus()
		}
		return m, nil, true
	}

	// Product list keybindings
	if m.focus == FocusList {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.catalog.VisibleProducts())-1 {
				m.cursor++
			}
		case "enter", " ":
			if p, ok := m.selectedProduct(); ok {
				m.cart.Toggle(p.ID)
				m.logger.Debug("cart toggled",
					zap.Int("product", p.ID),
					zap.Bool("in_cart", m.cart.Contains(p.ID)))
			}
		case "b":
			if p, ok := m.selectedProduct(); ok {
				m.notice = m.cart.BuyNow(p)
			}
		case "/":
			m.focus = FocusSearch
			m.searchInput.Focus()
		}
		return m, nil, true
	}

	// FocusSearch: let the search input consume the key.
	return m, nil, false
}
