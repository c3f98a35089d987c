package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogReplaced   EventType = "CatalogReplaced"
	EventDuplicatesDropped EventType = "DuplicatesDropped"
	EventQueryChanged      EventType = "QueryChanged"
	EventSelectionChanged  EventType = "SelectionChanged"
	EventOpenChanged       EventType = "OpenChanged"
	EventModeChanged       EventType = "ModeChanged"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogReplacedEvent is emitted when the host supplies a new option list
type CatalogReplacedEvent struct {
	Count int
}

func (e CatalogReplacedEvent) Type() EventType { return EventCatalogReplaced }

// DuplicatesDroppedEvent is emitted when a supplied catalog repeated values
type DuplicatesDroppedEvent struct {
	Values []string
}

func (e DuplicatesDroppedEvent) Type() EventType { return EventDuplicatesDropped }

// QueryChangedEvent is emitted when the search query changes
type QueryChangedEvent struct {
	Query      string
	MatchCount int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// SelectionChangedEvent is emitted when an operation computed a new selection
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// OpenChangedEvent is emitted when the dropdown panel opens or closes
type OpenChangedEvent struct {
	Open bool
}

func (e OpenChangedEvent) Type() EventType { return EventOpenChanged }

// ModeChangedEvent is emitted when switching between single and multi select
type ModeChangedEvent struct {
	Multiple bool
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// ErrorEvent is emitted when an operation was rejected and degraded to a no-op
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
