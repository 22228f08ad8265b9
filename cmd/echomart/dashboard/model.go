// Package dashboard implements the storefront dashboard view. The
// functionality is split across multiple files:
//   - model.go: types, construction, Init (this file)
//   - model_update.go: the Update loop and async feed messages
//   - model_key_handler.go: keyboard routing to store operations
//   - view.go: rendering functions
//
// The model composes three stores — the product catalog, the cart ledger and
// the chat session — and is the only component that mutates them. Every key
// event is routed synchronously to one store operation; derived view data is
// recomputed on every render and never cached.
package dashboard

import (
	"context"

	"echomart/cmd/echomart/ui"
	"echomart/internal/cart"
	"echomart/internal/catalog"
	"echomart/internal/chat"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Focus determines which component receives typed input.
type Focus int

const (
	FocusSearch Focus = iota
	FocusList
	FocusChat
)

const (
	chatPanelWidth = 38
	chatViewHeight = 12
	descLimit      = 70
)

// Config holds the collaborators for constructing the dashboard.
type Config struct {
	Feed   *catalog.Client
	Styles ui.Styles
	Logger *zap.Logger
}

// Model is the dashboard controller. It owns one instance of each store for
// the lifetime of the view; a fresh mount gets fresh stores.
type Model struct {
	// UI components
	searchInput textinput.Model
	chatInput   textinput.Model
	chatView    viewport.Model
	spinner     spinner.Model
	styles      ui.Styles

	// Stores
	catalog *catalog.Store
	cart    *cart.Ledger
	chat    *chat.Session

	feed   *catalog.Client
	logger *zap.Logger

	focus  Focus
	cursor int
	notice string

	width  int
	height int
	ready  bool
}

// New constructs the dashboard with fresh stores.
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Prompt = "🔍 "
	search.CharLimit = 128
	search.Width = 32
	search.Focus()

	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Prompt = "> "
	input.CharLimit = 512
	input.Width = chatPanelWidth - 6

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Styles.Notice

	vp := viewport.New(chatPanelWidth-2, chatViewHeight)

	return Model{
		searchInput: search,
		chatInput:   input,
		chatView:    vp,
		spinner:     sp,
		styles:      cfg.Styles,
		catalog:     catalog.NewStore(),
		cart:        cart.NewLedger(),
		chat:        chat.NewSession(),
		feed:        cfg.Feed,
		logger:      cfg.Logger,
		focus:       FocusSearch,
	}
}

// Init issues the one-shot catalog load. The idempotence guard lives in the
// store, so a duplicate mount or re-render cannot re-trigger the fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadCatalog())
}

// loadCatalog returns the fetch command, or nil when the load was already
// issued. The fetch runs off the event loop and re-enters it as a message.
func (m Model) loadCatalog() tea.Cmd {
	if !m.catalog.BeginLoad() {
		return nil
	}
	feed := m.feed
	logger := m.logger
	return func() tea.Msg {
		logger.Debug("catalog load starting")
		products, err := feed.Fetch(context.Background())
		if err != nil {
			return productsErrMsg{err: err}
		}
		return productsLoadedMsg(products)
	}
}
