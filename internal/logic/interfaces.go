package logic

import "selectdrop/internal/domain"

// SelectionStore is the host-side home of a Selection State. The controller
// never owns one; it only computes the next selection from the current one.
type SelectionStore interface {
	Get() []domain.Option
	Set(selection []domain.Option)
	Len() int
}
