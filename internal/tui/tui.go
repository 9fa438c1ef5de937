package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"go.withmatt.com/narrow/internal/cache"
	"go.withmatt.com/narrow/internal/config"
	"go.withmatt.com/narrow/internal/log"
	"go.withmatt.com/narrow/internal/navigate"
	"go.withmatt.com/narrow/internal/render"
	"go.withmatt.com/narrow/internal/store"
	"go.withmatt.com/narrow/internal/unread"
	"go.withmatt.com/narrow/internal/viewport"
)

// statusHeight is the number of lines below the message viewport.
const statusHeight = 1

// Store is the message source the TUI reads from and marks read in.
type Store interface {
	Messages(ctx context.Context, narrow store.Narrow) ([]store.Message, error)
	MarkRead(ctx context.Context, ids []int64) (int, error)
}

type Options struct {
	Store    Store
	Narrow   store.Narrow
	Theme    config.Theme
	UI       config.UIConfig
	Keys     config.KeyMap
	Pointers cache.Pointers
	Debug    bool
}

// Model is the TUI application state
type Model struct {
	ui       uiState
	stream   streamState
	search   searchState
	theme    config.Theme
	uiConfig config.UIConfig
	keys     keyMap

	store    Store
	pointers cache.Pointers

	view      *viewport.Model
	tables    *render.Registry
	renderer  *render.Renderer
	reads     *unread.Marker
	navigator *navigate.Navigator

	debug bool
	ctx   context.Context
}

// New creates a new TUI model
func New(ctx context.Context, opts Options) Model {
	uiConfig := opts.UI.WithDefaults()
	pointers := opts.Pointers
	if pointers == nil {
		pointers = cache.Pointers{}
	}

	ui := newUIState()
	ui.help = newHelpModel(opts.Theme)
	ui.alert = newAlertModel(opts.Theme, 0)

	view := viewport.New(0, 0, uiConfig.LineHeight)
	tables := render.NewRegistry(uiConfig.LineHeight)
	reads := unread.New(opts.Store, nil)

	model := Model{
		ui: ui,
		stream: streamState{
			narrow:  opts.Narrow,
			loading: true,
		},
		search:   newSearchState(opts.Theme),
		theme:    opts.Theme,
		uiConfig: uiConfig,
		keys:     keyMapFromConfig(opts.Keys),
		store:    opts.Store,
		pointers: pointers,
		view:     view,
		tables:   tables,
		reads:    reads,
		debug:    opts.Debug,
		ctx:      ctx,
	}
	model.renderer = render.NewRenderer(render.Options{
		Theme:       opts.Theme,
		Concurrency: uiConfig.RenderConcurrency,
		Logf:        log.Printf,
	})
	model.navigator = navigate.New(nil, view, reads, tables)
	model.logf("debug logging enabled")
	return model
}

// Init initializes the TUI and kicks off loading the narrow
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCmd(m.stream.narrow, false),
		m.ui.spinner.Tick,
		m.ui.alert.Init(),
		m.autoRefreshCmd(),
		m.setWindowTitleCmd(),
	)
}

// Run starts the TUI and returns the pointers as they were on exit.
func Run(ctx context.Context, opts Options) (cache.Pointers, error) {
	p := tea.NewProgram(
		New(ctx, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	m, ok := final.(Model)
	if !ok {
		return opts.Pointers, err
	}
	// Flush commands still running when the program quits are abandoned.
	if drainErr := m.reads.Drain(context.WithoutCancel(ctx)); drainErr != nil {
		err = errors.Join(err, drainErr)
	}
	return m.pointers, err
}
