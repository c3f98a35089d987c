package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/config"
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/log"
	"selectdrop/internal/logic"
	"selectdrop/internal/ui/commands"
	"selectdrop/internal/ui/coordinator"
	"selectdrop/internal/ui/handlers"
	"selectdrop/internal/ui/input"
	inputtypes "selectdrop/internal/ui/input/types"
	uilogic "selectdrop/internal/ui/logic"
	"selectdrop/internal/ui/state"
	"selectdrop/internal/ui/viewmodels"
	"selectdrop/internal/ui/views"
)

const (
	minPanelRows = 3
	maxPanelRows = 10
)

// Rows taken by everything except the option list: main padding, title,
// trigger, panel border, search box, scroll indicators and the footer
const reservedLines = 14

// Model is the demo host: a single dropdown on screen. It owns the
// selection through its store and feeds it to the controller on every event.
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	state      *state.AppState
	controller *coordinator.SelectionController
	store      logic.SelectionStore

	width       int
	height      int
	help        help.Model
	keys        keyMap
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *uilogic.Navigator     // panel cursor and viewport
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Events published while handling a message, turned into status updates
	// once the message is done
	pendingEvents []eventbus.DomainEvent
	unsubscribe   []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the host model and hands it the initial catalog
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.SelectionStore, options []domain.Option, source string) *Model {
	if bus == nil {
		bus = eventbus.New()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if store == nil {
		store = logic.NewMemorySelectionStore(nil)
	}

	appState := state.NewAppState()
	controller := coordinator.NewSelectionController(bus, cfg.Select)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		controller:   controller,
		store:        store,
		help:         help.New(),
		keys:         newKeyMap(),
		navigator:    uilogic.NewNavigator(appState.ViewportHeight),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}

	m.eventHandler = handlers.NewEventHandler(appState)
	m.cmdExecutor = commands.NewExecutor(appState, controller, store)

	placeholderTextInput := textinput.New()
	m.viewModel = viewmodels.NewViewModel(appState, controller, store, placeholderTextInput)
	m.viewModel.SetHelpContent(m.helpRenderer.RenderHelpContent())

	for _, t := range []eventbus.EventType{
		eventbus.EventCatalogReplaced,
		eventbus.EventDuplicatesDropped,
		eventbus.EventSelectionChanged,
		eventbus.EventModeChanged,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		m.unsubscribe = append(m.unsubscribe, bus.Subscribe(t, m.queueEvent))
	}

	m.cmdExecutor.ExecuteReplaceCatalog(options, source)
	m.syncNavigatorState()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetRenderOption installs a custom row renderer for the panel
func (m *Model) SetRenderOption(fn views.RenderOptionFunc) {
	m.renderer.SetRenderOption(fn)
}

// Selection returns the current selection
func (m *Model) Selection() []domain.Option {
	return m.store.Get()
}

// Controller exposes the dropdown controller
func (m *Model) Controller() *coordinator.SelectionController {
	return m.controller
}

// Close detaches the model from the event bus
func (m *Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
}

func (m *Model) queueEvent(e eventbus.DomainEvent) {
	m.pendingEvents = append(m.pendingEvents, e)
}

// flushEvents hands queued events to the event handler
func (m *Model) flushEvents() tea.Cmd {
	if len(m.pendingEvents) == 0 {
		return nil
	}
	events := m.pendingEvents
	m.pendingEvents = nil

	cmds := make([]tea.Cmd, 0, len(events))
	for _, e := range events {
		cmds = append(cmds, m.eventHandler.HandleEvent(e))
	}
	return tea.Batch(cmds...)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.flushEvents()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// The help popup swallows keys until closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

		// Follow closes the controller decided on, such as after a pick
		m.inputHandler.SyncOpen(m.controller.IsOpen(), ctx)
		m.syncNavigatorState()

		cmds = append(cmds, m.flushEvents())
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CatalogUpdatedMsg:
		m.cmdExecutor.ExecuteReplaceCatalog(msg.Options, msg.Source)
		m.inputHandler.SetText("")
		m.navigator.Reset()
		m.syncNavigatorState()
		return m, m.flushEvents()

	case CatalogErrorMsg:
		log.Errorf("Catalog reload failed: %v", msg.Err)
		m.bus.Publish(domain.ErrorEvent{Message: fmt.Sprintf("catalog reload failed: %v", msg.Err), Err: msg.Err})
		return m, m.flushEvents()

	case handlers.ClearStatusMsg:
		m.state.ClearStatus(msg.Seq)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the popup
			log.Warnf("Help pager failed: %v", msg.err)
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blink and friends for the search box
	return m, m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Debugf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.navigator.Move(a.Direction)

	case inputtypes.OpenAction:
		m.controller.OnOpenChange(a.Open)

	case inputtypes.ToggleOpenAction:
		m.controller.Toggle()

	case inputtypes.PickAction:
		rows := m.controller.FilteredView(m.store.Get())
		if a.Index < 0 || a.Index >= len(rows) {
			return nil
		}
		return m.cmdExecutor.ExecutePick(rows[a.Index].Option)

	case inputtypes.FocusBadgeAction:
		m.state.MoveBadgeFocus(a.Delta, m.store.Len())

	case inputtypes.DeleteBadgeAction:
		return m.cmdExecutor.ExecuteDeleteBadge(a.Index)

	case inputtypes.UpdateTextAction:
		m.search(a.Text)

	case inputtypes.SubmitTextAction:
		m.search(a.Text)

	case inputtypes.ClearSearchAction:
		m.controller.OnClearSearch()
		m.navigator.Reset()

	case inputtypes.ToggleMultipleAction:
		return m.cmdExecutor.ExecuteToggleMultiple()

	case inputtypes.ShowHelpAction:
		if m.program == nil {
			m.state.ShowHelp = true
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) search(query string) {
	if query == m.controller.Query() {
		return
	}
	m.controller.OnSearch(query)
	m.navigator.Reset()
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:      m.state,
		Controller: m.controller,
		Store:      m.store,
		Navigator:  m.navigator,
	}
}

// syncNavigatorState updates the navigator with the filtered row count and
// copies the cursor back into the app state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(m.controller.Search.GetMatchCount(), m.state.ViewportHeight)
	m.state.CursorIndex = m.navigator.GetSelectedIndex()
	m.state.ViewportOffset = m.navigator.GetViewportOffset()
}

// updateViewportHeight calculates how many option rows fit in the panel
func (m *Model) updateViewportHeight() {
	rows := m.height - reservedLines
	if rows < minPanelRows {
		rows = minPanelRows
	}
	if rows > maxPanelRows {
		rows = maxPanelRows
	}
	m.state.ViewportHeight = rows
	m.syncNavigatorState()
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)

	searching := m.inputHandler.CurrentMode() == inputtypes.ModeSearch
	keys := m.keys.forMode(m.controller.IsOpen(), searching, m.controller.Multiple(), m.controller.Settings().WithSearch)
	m.viewModel.SetHelp(m.help, keys)

	if searching {
		m.viewModel.SetInputMode(viewmodels.InputModeSearch)
		if ti := m.inputHandler.TextInput(); ti != nil {
			m.viewModel.UpdateTextInput(*ti)
		}
	} else {
		m.viewModel.SetInputMode(viewmodels.InputModeNormal)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}
