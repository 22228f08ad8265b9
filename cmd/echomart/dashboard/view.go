// Package dashboard: view rendering functions for the storefront TUI.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"echomart/internal/catalog"
	"echomart/internal/chat"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.styles.Content.Render(m.renderProducts()),
		m.renderFooter(),
	)

	if m.chat.IsOpen() {
		return lipgloss.JoinHorizontal(lipgloss.Top, main, m.renderChatPanel())
	}
	return main
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("EchoMart")
	search := m.searchInput.View()

	bag := "🛒"
	if n := m.cart.Count(); n > 0 {
		// Badge hidden at zero.
		bag += " " + m.styles.Badge.Render(strconv.Itoa(n))
	}

	return m.styles.Header.Render(
		lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", search, "   ", bag),
	)
}

func (m Model) renderProducts() string {
	if !m.catalog.Loaded() {
		return m.spinner.View() + " Loading catalog..."
	}

	if err := m.catalog.Err(); err != nil {
		return m.styles.Error.Render("Catalog unavailable.") + "\n" +
			m.styles.Muted.Render("The product feed could not be reached. Chat and cart still work.")
	}

	visible := m.catalog.VisibleProducts()
	if len(visible) == 0 {
		return m.styles.Muted.Render("No products found.")
	}

	var sb strings.Builder
	for i, p := range visible {
		sb.WriteString(m.renderCard(p, i == m.cursor && m.focus == FocusList))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderCard draws one product card: title, truncated description, price and
// the cart/buy controls, annotated with cart membership.
func (m Model) renderCard(p catalog.Product, selected bool) string {
	var lines []string
	lines = append(lines, m.styles.Bold.Render(p.Title))
	if p.Description != "" {
		lines = append(lines, m.styles.Muted.Render(truncate(p.Description, descLimit)))
	}

	price := m.styles.Price.Render("₹" + formatPrice(p.Price))
	var action string
	if m.cart.Contains(p.ID) {
		action = m.styles.Error.Render("Remove from Cart")
	} else {
		action = m.styles.Success.Render("Add to Cart")
	}
	lines = append(lines, price+"  "+action)

	card := m.styles.Card
	if selected {
		card = m.styles.CardSelected
	}
	return card.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	var parts []string
	if m.notice != "" {
		parts = append(parts, m.styles.Notice.Render(m.notice))
	}
	hints := "tab focus · ↑/↓ select · enter cart · b buy · ctrl+e chat · esc quit"
	parts = append(parts, m.styles.Footer.Render(hints))
	return strings.Join(parts, "\n")
}

func (m Model) renderChatPanel() string {
	header := m.styles.Title.Render("Echo") + " " +
		m.styles.Muted.Render(shortID(m.chat.ID().String())) + "  " +
		m.styles.Muted.Render("✖ esc")

	input := m.chatInput.View()
	hints := m.styles.Muted.Render("enter/ctrl+s send · ctrl+l clear")

	panel := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.chatView.View(),
		"",
		input,
		hints,
	)
	return m.styles.Sidebar.Width(chatPanelWidth).Render(panel)
}

// renderTranscript builds the chat viewport content: one static greeting
// bubble, then the sent messages. The greeting is never part of the session
// transcript.
func (m Model) renderTranscript() string {
	var sb strings.Builder
	sb.WriteString(m.styles.BotBubble.Render(chat.Greeting))
	sb.WriteString("\n")
	for _, msg := range m.chat.Transcript() {
		sb.WriteString("\n")
		sb.WriteString(m.styles.UserBubble.Render(msg))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatPrice renders a price as a plain decimal, the way the original
// storefront printed the feed's number.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func shortID(id string) string {
	if len(id) > 8 {
		return fmt.Sprintf("#%s", id[:8])
	}
	return "#" + id
}
