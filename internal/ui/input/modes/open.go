package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/ui/input/types"
)

// OpenMode handles keys while the panel is open and the list has focus
type OpenMode struct{}

func NewOpenMode() *OpenMode {
	return &OpenMode{}
}

func (m *OpenMode) Name() string {
	return "open"
}

func (m *OpenMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OpenMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OpenMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// First esc drops the query, the next one closes the panel
		if ctx.Query() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return closePanel(), true

	case tea.KeySpace:
		// Trigger click
		return []types.Action{
			types.ToggleOpenAction{},
			types.ChangeModeAction{Mode: types.ModeClosed},
		}, true

	case tea.KeyEnter:
		if ctx.CurrentIndex() < 0 {
			return nil, true
		}
		return []types.Action{types.PickAction{Index: ctx.CurrentIndex()}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		if !ctx.SearchEnabled() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()}}, true
	}

	return handleTriggerKeys(msg, ctx)
}

func closePanel() []types.Action {
	return []types.Action{
		types.OpenAction{Open: false},
		types.ChangeModeAction{Mode: types.ModeClosed},
	}
}
