// Package tui is the interactive shopping list: a splash screen followed by
// a live list of items with forms for adding and editing them.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/basket/internal/config"
	"github.com/thenoetrevino/basket/internal/models"
	"github.com/thenoetrevino/basket/internal/services/list"
	"github.com/thenoetrevino/basket/internal/tui/huhforms"
)

type screen int

const (
	screenSplash screen = iota
	screenList
	screenAdd
	screenEdit
	screenConfirmClear
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the bubbletea model for the whole TUI.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	svc    list.Service
	logger *slog.Logger

	keys   keyMap
	help   help.Model
	styles styles

	screen         screen
	splashDuration time.Duration
	splashFrame    int

	// Live list state. snapshots is nil until the subscription is open.
	snapshots <-chan []models.Item
	items     []models.Item
	loaded    bool
	cursor    int
	expanded  map[int]bool // by item ID, never persisted

	// Form state
	form      *huh.Form
	values    *huhforms.ItemValues
	editing   models.Item
	formError string

	status    string
	statusErr bool

	width  int
	height int
}

// Option configures the model
type Option func(*Model)

// WithLogger sets the logger for TUI errors
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New builds the TUI over svc. The model stops its live subscription when
// ctx is done or the user quits.
func New(ctx context.Context, svc list.Service, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	ctx, cancel := context.WithCancel(ctx)

	m := Model{
		ctx:            ctx,
		cancel:         cancel,
		svc:            svc,
		logger:         slog.Default(),
		keys:           newKeyMap(cfg.KeyMappings),
		help:           help.New(),
		styles:         newStyles(cfg.Theme),
		screen:         screenSplash,
		splashDuration: cfg.TUI.SplashDuration,
		expanded:       make(map[int]bool),
		width:          defaultWidth,
		height:         defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.splashDuration <= 0 {
		m.screen = screenList
	}
	return m
}

// Init starts the splash animation and opens the live item subscription.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{subscribe(m.ctx, m.svc)}
	if m.screen == screenSplash {
		cmds = append(cmds, splashTick(), splashTimeout(m.splashDuration))
	}
	return tea.Batch(cmds...)
}

// Items returns the latest snapshot shown by the list.
func (m Model) Items() []models.Item {
	return m.items
}

func (m Model) selected() (models.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return models.Item{}, false
	}
	return m.items[m.cursor], true
}

// clampCursor keeps the cursor on an item after the list changes size.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(action string, err error) {
	m.logger.Error("tui operation failed", "action", action, "error", err)
	m.status = "Failed to " + action + ": " + err.Error()
	m.statusErr = true
}

func (m *Model) quit() tea.Cmd {
	m.cancel()
	return tea.Quit
}
