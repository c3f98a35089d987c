package search

import (
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/log"
	"selectdrop/internal/logic"
)

// Service owns the query and the filtered view derived from it
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{
			Catalog:  []domain.Option{},
			Filtered: []domain.Option{},
		},
		bus: bus,
	}
}

// SetCatalog replaces the catalog and resets the query, so the filtered
// view becomes the full new catalog.
func (s *Service) SetCatalog(catalog []domain.Option) {
	s.state.Catalog = catalog
	s.state.Query = ""
	s.state.Filtered = logic.Filter(catalog, "")
	s.bus.Publish(domain.CatalogReplacedEvent{Count: len(catalog)})
}

// StartSearch updates the query and recomputes the filtered view
func (s *Service) StartSearch(query string) {
	if query == s.state.Query {
		return // Same search
	}

	s.state.Query = query
	s.state.Filtered = logic.Filter(s.state.Catalog, query)

	log.Debugf("Search for '%s': %d matches", query, len(s.state.Filtered))
	s.bus.Publish(domain.QueryChangedEvent{
		Query:      query,
		MatchCount: len(s.state.Filtered),
	})
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	s.StartSearch("")
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMatchCount returns the number of options in the filtered view
func (s *Service) GetMatchCount() int {
	return len(s.state.Filtered)
}

// Filtered returns a copy of the filtered view
func (s *Service) Filtered() []domain.Option {
	out := make([]domain.Option, len(s.state.Filtered))
	copy(out, s.state.Filtered)
	return out
}

// Catalog returns a copy of the current catalog
func (s *Service) Catalog() []domain.Option {
	out := make([]domain.Option, len(s.state.Catalog))
	copy(out, s.state.Catalog)
	return out
}

// InCatalog reports whether value belongs to the current catalog
func (s *Service) InCatalog(value string) bool {
	return logic.Contains(s.state.Catalog, value)
}

// Segments splits a label for emphasis against the current query
func (s *Service) Segments(label string) []logic.Segment {
	return logic.Highlight(label, s.state.Query)
}
