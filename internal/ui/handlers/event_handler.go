package handlers

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"selectdrop/internal/eventbus"
	"selectdrop/internal/ui/state"
)

// StatusTimeout is how long a status message stays in the status bar
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status bar if Seq is still the latest message
type ClearStatusMsg struct {
	Seq int
}

// EventHandler turns domain events into status bar updates
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogReplacedEvent:
		h.state.CatalogCount = e.Count
		return h.status(fmt.Sprintf("Catalog loaded: %d options", e.Count), false)

	case eventbus.DuplicatesDroppedEvent:
		return h.status(fmt.Sprintf("Dropped duplicate values: %s", strings.Join(e.Values, ", ")), true)

	case eventbus.SelectionChangedEvent:
		switch {
		case len(e.Added) > 0 && len(e.Removed) > 0:
			return h.status(fmt.Sprintf("Selected %s", strings.Join(e.Added, ", ")), false)
		case len(e.Added) > 0:
			return h.status(fmt.Sprintf("Selected %s (%d total)", strings.Join(e.Added, ", "), e.Total), false)
		case len(e.Removed) > 0:
			return h.status(fmt.Sprintf("Removed %s (%d left)", strings.Join(e.Removed, ", "), e.Total), false)
		}

	case eventbus.ModeChangedEvent:
		if e.Multiple {
			return h.status("Multi select, selection cleared", false)
		}
		return h.status("Single select, selection cleared", false)

	case eventbus.ErrorEvent:
		return h.status(fmt.Sprintf("Error: %s", e.Message), true)

	case eventbus.ConfigSavedEvent:
		return h.status(fmt.Sprintf("Config saved to %s", e.Path), false)
	}

	return nil
}

func (h *EventHandler) status(msg string, isError bool) tea.Cmd {
	seq := h.state.SetStatus(msg, isError)
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
