package selection

import (
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/logic"
)

// Service applies selection transitions and announces the results
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus, multiple bool) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{Multiple: multiple},
		bus:   bus,
	}
}

// Multiple reports whether multi select is active
func (s *Service) Multiple() bool {
	return s.state.Multiple
}

// SetMultiple switches mode. Switching always yields an empty selection,
// which the caller must hand back to the host.
func (s *Service) SetMultiple(multiple bool) []domain.Option {
	s.state.Multiple = multiple
	s.bus.Publish(domain.ModeChangedEvent{Multiple: multiple})
	return []domain.Option{}
}

// Select computes the next selection after picking candidate
func (s *Service) Select(current []domain.Option, candidate domain.Option) []domain.Option {
	next := logic.Select(current, candidate, s.state.Multiple)
	s.publishChange(current, next)
	return next
}

// Deselect removes the selection entry at index
func (s *Service) Deselect(current []domain.Option, index int) ([]domain.Option, error) {
	next, err := logic.Deselect(current, index)
	if err != nil {
		return next, err
	}
	s.publishChange(current, next)
	return next, nil
}

// Mark returns a copy of options whose Selected flags mirror selection
func (s *Service) Mark(options []domain.Option, selection []domain.Option) []domain.Option {
	set := logic.SelectedSet(selection)
	out := make([]domain.Option, len(options))
	for i, opt := range options {
		opt.Selected = set[opt.Value]
		out[i] = opt
	}
	return out
}

func (s *Service) publishChange(before, after []domain.Option) {
	added, removed := logic.Diff(before, after)
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	s.bus.Publish(domain.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(after),
	})
}
