package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/domain"
	"selectdrop/internal/logic"
	"selectdrop/internal/ui/coordinator"
	"selectdrop/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, controller *coordinator.SelectionController, store logic.SelectionStore) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:      state,
			Controller: controller,
			Store:      store,
		},
	}
}

// ExecutePick creates and executes a pick command
func (e *Executor) ExecutePick(option domain.Option) tea.Cmd {
	cmd := NewPickCommand(e.ctx, option)
	return cmd.Execute()
}

// ExecuteDeleteBadge creates and executes a delete badge command
func (e *Executor) ExecuteDeleteBadge(index int) tea.Cmd {
	cmd := NewDeleteBadgeCommand(e.ctx, index)
	return cmd.Execute()
}

// ExecuteToggleMultiple flips single/multi mode
func (e *Executor) ExecuteToggleMultiple() tea.Cmd {
	cmd := NewSetModeCommand(e.ctx, !e.ctx.Controller.Multiple())
	return cmd.Execute()
}

// ExecuteReplaceCatalog creates and executes a replace catalog command
func (e *Executor) ExecuteReplaceCatalog(options []domain.Option, source string) tea.Cmd {
	cmd := NewReplaceCatalogCommand(e.ctx, options, source)
	return cmd.Execute()
}
