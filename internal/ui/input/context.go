package input

import (
	"selectdrop/internal/logic"
	"selectdrop/internal/ui/coordinator"
	uilogic "selectdrop/internal/ui/logic"
	"selectdrop/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      *state.AppState
	Controller *coordinator.SelectionController
	Store      logic.SelectionStore
	Navigator  *uilogic.Navigator
}

// IsOpen reports whether the panel is visible
func (c *ModelContext) IsOpen() bool {
	return c.Controller.IsOpen()
}

// CurrentIndex returns the row under the cursor
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.GetSelectedIndex()
}

// TotalItems returns the number of rows in the filtered view
func (c *ModelContext) TotalItems() int {
	return c.Navigator.TotalItems()
}

// BadgeCount returns the number of selected options
func (c *ModelContext) BadgeCount() int {
	return c.Store.Len()
}

// FocusedBadge returns the badge with focus, or -1
func (c *ModelContext) FocusedBadge() int {
	return c.State.FocusedBadge
}

// Multiple reports the current mode
func (c *ModelContext) Multiple() bool {
	return c.Controller.Multiple()
}

// SearchEnabled reports whether the panel has a search box
func (c *ModelContext) SearchEnabled() bool {
	return c.Controller.Settings().WithSearch
}

// Query returns the current search text
func (c *ModelContext) Query() string {
	return c.Controller.Query()
}
