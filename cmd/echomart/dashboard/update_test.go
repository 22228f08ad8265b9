// Package dashboard tests for the Update loop: key routing, store mutation
// and the async catalog load messages.
package dashboard

import (
	"errors"
	"strings"
	"testing"

	"echomart/cmd/echomart/ui"
	"echomart/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Red Shirt", Description: "a shirt", Price: 19.99, Image: "u"},
		{ID: 2, Title: "Blue Jeans", Description: "denim", Price: 49.5, Image: "v"},
		{ID: 3, Title: "red scarf", Description: "wool", Price: 9, Image: "w"},
	}
}

// newTestModel builds a ready dashboard with a loaded catalog. The feed
// client is never exercised; loads are applied via messages.
func newTestModel(t *testing.T, products []catalog.Product) Model {
	t.Helper()
	m := New(Config{Styles: ui.NewStyles(ui.LightTheme()), Logger: zap.NewNop()})
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m.catalog.BeginLoad()
	return press(m, productsLoadedMsg(products))
}

func press(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeString(m Model, s string) Model {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// =============================================================================
// WINDOW SIZE AND LOAD MESSAGES
// =============================================================================

func TestUpdate_WindowSize(t *testing.T) {
	t.Parallel()
	m := New(Config{Styles: ui.NewStyles(ui.LightTheme())})

	m = press(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 {
		t.Errorf("Expected width 120, got %d", m.width)
	}
	if !m.ready {
		t.Error("Expected model to be ready after first window size")
	}
}

func TestUpdate_ProductsLoaded(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())

	if !m.catalog.Loaded() {
		t.Fatal("Expected catalog to be loaded")
	}
	if got := len(m.catalog.VisibleProducts()); got != 3 {
		t.Errorf("Expected 3 visible products, got %d", got)
	}
}

func TestUpdate_ProductsErr(t *testing.T) {
	t.Parallel()
	m := New(Config{Styles: ui.NewStyles(ui.LightTheme()), Logger: zap.NewNop()})
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m.catalog.BeginLoad()

	m = press(m, productsErrMsg{err: errors.New("connection refused")})

	if m.catalog.Err() == nil {
		t.Fatal("Expected catalog error state")
	}
	if !strings.Contains(m.View(), "Catalog unavailable") {
		t.Error("Expected the view to surface the catalog failure")
	}
}

func TestUpdate_FetchFailureDoesNotBlockChatAndCart(t *testing.T) {
	t.Parallel()
	m := New(Config{Styles: ui.NewStyles(ui.LightTheme()), Logger: zap.NewNop()})
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m.catalog.BeginLoad()
	m = press(m, productsErrMsg{err: errors.New("boom")})

	// Chat still works.
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m = typeString(m, "anyone there?")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.chat.Transcript(); len(got) != 1 || got[0] != "anyone there?" {
		t.Errorf("Expected chat to work after fetch failure, transcript=%v", got)
	}

	// Cart still works.
	m.cart.Toggle(42)
	if !m.cart.Contains(42) {
		t.Error("Expected cart to work after fetch failure")
	}
}

func TestLoadCatalog_OneShot(t *testing.T) {
	t.Parallel()
	m := New(Config{Styles: ui.NewStyles(ui.LightTheme()), Logger: zap.NewNop()})

	if cmd := m.loadCatalog(); cmd == nil {
		t.Fatal("Expected the first load to issue a fetch command")
	}
	if cmd := m.loadCatalog(); cmd != nil {
		t.Error("Expected a duplicate load to be a no-op")
	}
}

// =============================================================================
// SEARCH ROUTING
// =============================================================================

func TestSearch_FiltersVisibleList(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())

	m = typeString(m, "red")

	got := m.catalog.VisibleProducts()
	if len(got) != 2 {
		t.Fatalf("Expected 2 visible products for 'red', got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("Expected feed order [1 3], got [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestSearch_NoMatchShowsPlaceholder(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())

	m = typeString(m, "zebra")

	if len(m.catalog.VisibleProducts()) != 0 {
		t.Fatal("Expected no visible products")
	}
	if !strings.Contains(m.View(), "No products found.") {
		t.Error("Expected the empty-state placeholder")
	}
}

func TestSearch_ClampsCursor(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())
	m = press(m, tea.KeyMsg{Type: tea.KeyTab}) // focus list
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.cursor != 2 {
		t.Fatalf("Expected cursor 2, got %d", m.cursor)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}) // back to search
	m = typeString(m, "red")

	if m.cursor > 1 {
		t.Errorf("Expected cursor clamped to the shrunken list, got %d", m.cursor)
	}
}

// =============================================================================
// CART ROUTING
// =============================================================================

func TestCart_ToggleKeyIsItsOwnInverse(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.cart.Contains(1) {
		t.Fatal("Expected product 1 in cart after toggle")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.cart.Contains(1) {
		t.Error("Expected product 1 removed after second toggle")
	}
	if m.cart.Count() != 0 {
		t.Errorf("Expected empty cart, got count %d", m.cart.Count())
	}
}

func TestCart_BuyNowNotice(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})

	want := "You are buying: Red Shirt for ₹19.99"
	if m.notice != want {
		t.Errorf("Expected notice %q, got %q", want, m.notice)
	}
	if m.cart.Count() != 0 {
		t.Error("Expected buy-now to leave the cart untouched")
	}
}

// =============================================================================
// CHAT ROUTING
// =============================================================================

func TestChat_OpenTypeSend(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if !m.chat.IsOpen() {
		t.Fatal("Expected chat open after ctrl+e")
	}

	m = typeString(m, "hello")
	if m.chat.Draft() != "hello" {
		t.Fatalf("Expected draft 'hello', got %q", m.chat.Draft())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.chat.Transcript(); len(got) != 1 || got[0] != "hello" {
		t.Errorf("Expected transcript [hello], got %v", got)
	}
	if m.chat.Draft() != "" {
		t.Errorf("Expected draft reset, got %q", m.chat.Draft())
	}
	if m.chatInput.Value() != "" {
		t.Errorf("Expected chat input cleared, got %q", m.chatInput.Value())
	}
}

func TestChat_WhitespaceSendIsNoOp(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m = typeString(m, "  ")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.chat.Transcript()) != 0 {
		t.Error("Expected whitespace send to leave the transcript unchanged")
	}
	if m.chat.Draft() != "  " {
		t.Errorf("Expected draft unchanged, got %q", m.chat.Draft())
	}
}

func TestChat_EnterMatchesExplicitSend(t *testing.T) {
	t.Parallel()
	// Both trigger paths must produce identical resulting state for identical
	// draft content.
	viaEnter := newTestModel(t, testProducts())
	viaEnter = press(viaEnter, tea.KeyMsg{Type: tea.KeyCtrlE})
	viaEnter = typeString(viaEnter, "same draft")
	viaEnter = press(viaEnter, tea.KeyMsg{Type: tea.KeyEnter})

	viaSend := newTestModel(t, testProducts())
	viaSend = press(viaSend, tea.KeyMsg{Type: tea.KeyCtrlE})
	viaSend = typeString(viaSend, "same draft")
	viaSend = press(viaSend, tea.KeyMsg{Type: tea.KeyCtrlS})

	if diff := cmp.Diff(viaEnter.chat.Transcript(), viaSend.chat.Transcript()); diff != "" {
		t.Errorf("Transcript mismatch between send paths (-enter +send):\n%s", diff)
	}
	if viaEnter.chat.Draft() != viaSend.chat.Draft() {
		t.Error("Expected identical draft state for both send paths")
	}
}

func TestChat_ClearKey(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m = typeString(m, "one")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeString(m, "two")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlL})

	if len(m.chat.Transcript()) != 0 {
		t.Error("Expected transcript cleared")
	}
	if !m.chat.IsOpen() {
		t.Error("Expected clear to leave the panel open")
	}
}

func TestChat_CloseReopenPreservesState(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testProducts())
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m = typeString(m, "kept")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeString(m, "in progress")

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc}) // close
	if m.chat.IsOpen() {
		t.Fatal("Expected chat closed after esc")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlE}) // reopen
	if got := m.chat.Transcript(); len(got) != 1 || got[0] != "kept" {
		t.Errorf("Expected transcript preserved across close/open, got %v", got)
	}
	if m.chat.Draft() != "in progress" {
		t.Errorf("Expected draft preserved across close/open, got %q", m.chat.Draft())
	}
}
