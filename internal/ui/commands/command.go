package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/domain"
	"selectdrop/internal/log"
	"selectdrop/internal/logic"
	"selectdrop/internal/ui/coordinator"
	"selectdrop/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State      *state.AppState
	Controller *coordinator.SelectionController
	Store      logic.SelectionStore
}

// PickCommand applies an option click and stores the next selection
type PickCommand struct {
	ctx    *CommandContext
	option domain.Option
}

// NewPickCommand creates a new pick command
func NewPickCommand(ctx *CommandContext, option domain.Option) *PickCommand {
	return &PickCommand{
		ctx:    ctx,
		option: option,
	}
}

// Execute performs the pick
func (c *PickCommand) Execute() tea.Cmd {
	result := c.ctx.Controller.OnOptionClick(c.option, c.ctx.Store.Get())
	c.ctx.Store.Set(result.NextSelection)
	c.ctx.State.ClampBadgeFocus(len(result.NextSelection))
	return nil
}

// DeleteBadgeCommand removes one entry of the selection
type DeleteBadgeCommand struct {
	ctx   *CommandContext
	index int
}

// NewDeleteBadgeCommand creates a new delete badge command
func NewDeleteBadgeCommand(ctx *CommandContext, index int) *DeleteBadgeCommand {
	return &DeleteBadgeCommand{
		ctx:   ctx,
		index: index,
	}
}

// Execute performs the delete
func (c *DeleteBadgeCommand) Execute() tea.Cmd {
	next := c.ctx.Controller.OnDeleteBadge(c.index, c.ctx.Store.Get())
	c.ctx.Store.Set(next)
	c.ctx.State.ClampBadgeFocus(len(next))
	return nil
}

// SetModeCommand switches single/multi mode and adopts the cleared selection
type SetModeCommand struct {
	ctx      *CommandContext
	multiple bool
}

// NewSetModeCommand creates a new set mode command
func NewSetModeCommand(ctx *CommandContext, multiple bool) *SetModeCommand {
	return &SetModeCommand{
		ctx:      ctx,
		multiple: multiple,
	}
}

// Execute performs the mode switch
func (c *SetModeCommand) Execute() tea.Cmd {
	cleared := c.ctx.Controller.SetMode(c.multiple)
	c.ctx.Store.Set(cleared)
	c.ctx.State.FocusedBadge = -1
	return nil
}

// ReplaceCatalogCommand hands a new option list to the controller
type ReplaceCatalogCommand struct {
	ctx     *CommandContext
	options []domain.Option
	source  string
}

// NewReplaceCatalogCommand creates a new replace catalog command
func NewReplaceCatalogCommand(ctx *CommandContext, options []domain.Option, source string) *ReplaceCatalogCommand {
	return &ReplaceCatalogCommand{
		ctx:     ctx,
		options: options,
		source:  source,
	}
}

// Execute performs the replacement. The selection is left alone: values
// that disappeared from the catalog stay selected until the user removes them.
func (c *ReplaceCatalogCommand) Execute() tea.Cmd {
	dropped := c.ctx.Controller.SetCatalog(c.options)
	c.ctx.State.CatalogSource = c.source
	c.ctx.State.CatalogCount = len(c.ctx.Controller.Catalog())

	log.LogWithFields(
		log.F("source", c.source),
		log.F("count", c.ctx.State.CatalogCount),
		log.F("dropped", len(dropped)),
	).Info("Catalog replaced")
	return nil
}
