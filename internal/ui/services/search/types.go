package search

import "selectdrop/internal/domain"

// State holds search state
type State struct {
	Catalog  []domain.Option // normalized catalog, replaced wholesale
	Query    string
	Filtered []domain.Option // Filter(Catalog, Query), recomputed on every change
}
