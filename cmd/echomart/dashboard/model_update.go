package dashboard

import (
	"echomart/internal/catalog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// productsLoadedMsg carries the normalized feed on a successful load.
type productsLoadedMsg []catalog.Product

// productsErrMsg carries the load failure. The catalog stays empty; chat and
// cart keep working.
type productsErrMsg struct {
	err error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refreshChatView()
		return m, nil

	case spinner.TickMsg:
		if m.catalog.Loaded() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case productsLoadedMsg:
		m.catalog.FinishLoad([]catalog.Product(msg), nil)
		m.clampCursor()
		m.logger.Debug("catalog loaded", zap.Int("products", len(msg)))
		return m, nil

	case productsErrMsg:
		m.catalog.FinishLoad(nil, msg.err)
		m.logger.Warn("catalog load failed", zap.Error(msg.err))
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.handleKeyMsg(msg)
		if handled {
			return next, cmd
		}
		return next.updateFocusedInput(msg)
	}

	return m, nil
}

// updateFocusedInput forwards an unconsumed key to the focused text input and
// syncs the edited value into the owning store.
func (m Model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FocusChat {
		m.chatInput, cmd = m.chatInput.Update(msg)
		m.chat.SetDraft(m.chatInput.Value())
		return m, cmd
	}
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.catalog.SetSearchTerm(m.searchInput.Value())
	m.clampCursor()
	return m, cmd
}

// submitChat is the single send path: the explicit send action and the Enter
// key both land here, so identical drafts produce identical resulting state.
func (m Model) submitChat() Model {
	if m.chat.Send() {
		m.chatInput.SetValue("")
		m.refreshChatView()
	}
	return m
}

// clampCursor keeps the list cursor inside the visible subsequence, which
// shrinks and grows as the search term changes.
func (m *Model) clampCursor() {
	visible := len(m.catalog.VisibleProducts())
	if visible == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
}

// selectedProduct resolves the card under the cursor, if any.
func (m Model) selectedProduct() (catalog.Product, bool) {
	visible := m.catalog.VisibleProducts()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return catalog.Product{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) refreshChatView() {
	m.chatView.SetContent(m.renderTranscript())
	m.chatView.GotoBottom()
}
