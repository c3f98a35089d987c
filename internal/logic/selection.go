package logic

import "selectdrop/internal/domain"

// Select computes the selection that results from picking candidate.
// Single select replaces whatever was chosen. Multi select appends the
// candidate unless its value is already present, in which case the selection
// is returned unchanged; picking twice never toggles. The result is always a
// fresh slice and the stored candidate never carries the advisory flag.
func Select(current []domain.Option, candidate domain.Option, multiple bool) []domain.Option {
	candidate.Selected = false

	if !multiple {
		return []domain.Option{candidate}
	}

	next := make([]domain.Option, len(current), len(current)+1)
	copy(next, current)
	if indexOf(current, candidate.Value) >= 0 {
		return next
	}
	return append(next, candidate)
}

// Deselect removes the element at index, preserving the order of the rest.
// An index outside the selection returns an unchanged copy and an
// *IndexError wrapping ErrOutOfRange.
func Deselect(current []domain.Option, index int) ([]domain.Option, error) {
	if index < 0 || index >= len(current) {
		next := make([]domain.Option, len(current))
		copy(next, current)
		return next, &IndexError{Index: index, Len: len(current)}
	}

	next := make([]domain.Option, 0, len(current)-1)
	next = append(next, current[:index]...)
	next = append(next, current[index+1:]...)
	return next, nil
}

// Diff reports which values were added and removed between two selections
func Diff(before, after []domain.Option) (added, removed []string) {
	beforeSet := SelectedSet(before)
	afterSet := SelectedSet(after)
	for _, opt := range after {
		if !beforeSet[opt.Value] {
			added = append(added, opt.Value)
		}
	}
	for _, opt := range before {
		if !afterSet[opt.Value] {
			removed = append(removed, opt.Value)
		}
	}
	return added, removed
}
