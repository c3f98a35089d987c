package coordinator

import (
	"errors"

	"selectdrop/internal/config"
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/log"
	"selectdrop/internal/logic"
	"selectdrop/internal/ui/services/search"
	"selectdrop/internal/ui/services/selection"
)

// ClickResult is the outcome of picking an option in the panel
type ClickResult struct {
	NextSelection []domain.Option
	CloseDropdown bool
}

// ViewOption is one row of the filtered view as the presentation layer sees it
type ViewOption struct {
	domain.Option
	Segments []logic.Segment
}

// SelectionController composes the search and selection services behind the
// dropdown's event contract. It never stores the selection: every operation
// that changes it takes the current one and returns the next.
type SelectionController struct {
	Search    *search.Service
	Selection *selection.Service

	settings config.SelectSettings
	open     bool
	bus      eventbus.EventBus
}

// NewSelectionController creates a controller for the given settings
func NewSelectionController(bus eventbus.EventBus, settings config.SelectSettings) *SelectionController {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if err := settings.Validate(); err != nil {
		log.Warnf("%v, falling back to %q", err, config.CloseAlways)
		settings.ClosePolicy = config.CloseAlways
	}

	return &SelectionController{
		Search:    search.NewService(bus),
		Selection: selection.NewService(bus, settings.Multiple),
		settings:  settings,
		bus:       bus,
	}
}

// SetCatalog replaces the catalog and resets the query. Duplicate values keep
// their first occurrence; the dropped ones are returned.
func (c *SelectionController) SetCatalog(options []domain.Option) []string {
	normalized, err := logic.NormalizeCatalog(options)

	c.Search.SetCatalog(normalized)

	var dropped []string
	var dupErr *logic.DuplicateError
	if errors.As(err, &dupErr) {
		dropped = dupErr.Values
		log.LogWithFields(log.F("values", dropped)).Warn("Dropped duplicate catalog values")
		c.bus.Publish(domain.DuplicatesDroppedEvent{Values: dropped})
	}
	return dropped
}

// SetMode switches between single and multi select and returns the cleared
// selection the host must adopt.
func (c *SelectionController) SetMode(multiple bool) []domain.Option {
	c.settings.Multiple = multiple
	return c.Selection.SetMultiple(multiple)
}

// OnSearch updates the query. Ignored when search is disabled.
func (c *SelectionController) OnSearch(query string) {
	if !c.settings.WithSearch {
		log.Debugf("search disabled, ignoring query %q", query)
		return
	}
	c.Search.StartSearch(query)
}

// OnClearSearch resets the query to empty
func (c *SelectionController) OnClearSearch() {
	c.Search.ClearSearch()
}

// OnOptionClick picks option and reports whether the panel should close
func (c *SelectionController) OnOptionClick(option domain.Option, current []domain.Option) ClickResult {
	if !c.Search.InCatalog(option.Value) {
		log.LogWithFields(log.F("value", option.Value)).Warn("Picked option is not in the catalog")
	}

	next := c.Selection.Select(current, option)
	closeDropdown := c.shouldClose()
	if closeDropdown {
		c.OnOpenChange(false)
	}

	return ClickResult{NextSelection: next, CloseDropdown: closeDropdown}
}

// OnDeleteBadge removes the selection entry at index. A bad index leaves
// the selection as it was.
func (c *SelectionController) OnDeleteBadge(index int, current []domain.Option) []domain.Option {
	next, err := c.Selection.Deselect(current, index)
	if err != nil {
		log.Warnf("delete badge ignored: %v", err)
		c.bus.Publish(domain.ErrorEvent{Message: "delete badge ignored", Err: err})
	}
	return next
}

// OnOpenChange sets panel visibility
func (c *SelectionController) OnOpenChange(isOpen bool) {
	if c.open == isOpen {
		return
	}
	c.open = isOpen
	c.bus.Publish(domain.OpenChangedEvent{Open: isOpen})
}

// Toggle flips panel visibility, as a trigger click does
func (c *SelectionController) Toggle() {
	c.OnOpenChange(!c.open)
}

func (c *SelectionController) shouldClose() bool {
	if c.settings.ClosePolicy == config.CloseSingleOnly {
		return !c.settings.Multiple
	}
	return true
}

// FilteredView returns the rows to render: the filtered options with
// Selected derived from current and the highlight segments for the query.
func (c *SelectionController) FilteredView(current []domain.Option) []ViewOption {
	marked := c.Selection.Mark(c.Search.Filtered(), current)
	rows := make([]ViewOption, len(marked))
	for i, opt := range marked {
		rows[i] = ViewOption{Option: opt, Segments: c.Search.Segments(opt.Label)}
	}
	return rows
}

// Query returns the current search text
func (c *SelectionController) Query() string { return c.Search.GetQuery() }

// IsOpen reports panel visibility
func (c *SelectionController) IsOpen() bool { return c.open }

// Multiple reports the current mode
func (c *SelectionController) Multiple() bool { return c.settings.Multiple }

// Catalog returns a copy of the normalized catalog
func (c *SelectionController) Catalog() []domain.Option { return c.Search.Catalog() }

// Settings returns the settings the controller was built with, including mode changes
func (c *SelectionController) Settings() config.SelectSettings { return c.settings }
