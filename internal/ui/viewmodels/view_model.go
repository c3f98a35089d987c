package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"selectdrop/internal/logic"
	"selectdrop/internal/ui/coordinator"
	"selectdrop/internal/ui/state"
	"selectdrop/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	controller       *coordinator.SelectionController
	store            logic.SelectionStore
	width            int
	height           int
	help             help.Model
	keyMap           help.KeyMap
	helpContent      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, controller *coordinator.SelectionController, store logic.SelectionStore, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		controller:       controller,
		store:            store,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, keyMap help.KeyMap) {
	vm.help = helpModel
	vm.keyMap = keyMap
}

// SetHelpContent sets the text of the help popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	settings := vm.controller.Settings()
	selection := vm.store.Get()

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Label:          settings.Label,
		Placeholder:    settings.PlaceholderText(),
		Outline:        settings.Outline,
		Multiple:       vm.controller.Multiple(),
		WithSearch:     settings.WithSearch,
		Open:           vm.controller.IsOpen(),
		Selection:      selection,
		Rows:           vm.controller.FilteredView(selection),
		CatalogSize:    vm.state.CatalogCount,
		CursorIndex:    vm.state.CursorIndex,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		FocusedBadge:   vm.state.FocusedBadge,
		Query:          vm.controller.Query(),
		Searching:      vm.inputTransformer.IsSearching(),
		SearchInput:    vm.inputTransformer.GetInputText(),
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		ShowHelp:       vm.state.ShowHelp,
		HelpContent:    vm.helpContent,
		HelpModel:      vm.help,
		KeyMap:         vm.keyMap,
	}
}
