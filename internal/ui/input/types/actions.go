package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Panel visibility
type OpenAction struct {
	Open bool
}

func (a OpenAction) Type() string { return "open" }

// Trigger click: flips panel visibility
type ToggleOpenAction struct{}

func (a ToggleOpenAction) Type() string { return "toggle_open" }

// Picking the row under the cursor
type PickAction struct {
	Index int
}

func (a PickAction) Type() string { return "pick" }

// Badge actions
type FocusBadgeAction struct {
	Delta int
}

func (a FocusBadgeAction) Type() string { return "focus_badge" }

type DeleteBadgeAction struct {
	Index int
}

func (a DeleteBadgeAction) Type() string { return "delete_badge" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Command actions
type ToggleMultipleAction struct{}

func (a ToggleMultipleAction) Type() string { return "toggle_multiple" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
