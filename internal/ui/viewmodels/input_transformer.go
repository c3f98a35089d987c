package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// IsSearching reports whether the search box has focus
func (it *InputTransformer) IsSearching() bool {
	return it.mode == InputModeSearch
}

// GetInputText returns the current text input for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode != InputModeSearch {
		return ""
	}
	return it.textInput.View()
}
