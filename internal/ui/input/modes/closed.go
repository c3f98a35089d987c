package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/ui/input/types"
)

// ClosedMode handles keys while only the trigger is visible
type ClosedMode struct{}

func NewClosedMode() *ClosedMode {
	return &ClosedMode{}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return nil, false

	case tea.KeyEnter, tea.KeySpace:
		// Trigger click
		return []types.Action{
			types.ToggleOpenAction{},
			types.ChangeModeAction{Mode: types.ModeOpen},
		}, true
	}

	return handleTriggerKeys(msg, ctx)
}

// handleTriggerKeys covers the keys that work on the trigger whether or not
// the panel is open: badge focus and delete, mode toggle, help and quit.
func handleTriggerKeys(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "left", "h":
		if ctx.Multiple() && ctx.BadgeCount() > 0 {
			return []types.Action{types.FocusBadgeAction{Delta: -1}}, true
		}
		return nil, true

	case "right", "l":
		if ctx.Multiple() && ctx.BadgeCount() > 0 {
			return []types.Action{types.FocusBadgeAction{Delta: 1}}, true
		}
		return nil, true

	case "backspace", "delete", "x":
		if ctx.FocusedBadge() >= 0 {
			return []types.Action{types.DeleteBadgeAction{Index: ctx.FocusedBadge()}}, true
		}
		return nil, true

	case "m":
		return []types.Action{types.ToggleMultipleAction{}}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
