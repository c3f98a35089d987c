package logic

import "selectdrop/internal/domain"

// NormalizeCatalog returns a copy of options unique by value. The first
// occurrence of a value wins; later ones are dropped and reported through a
// *DuplicateError. Advisory Selected flags are cleared on the copy.
func NormalizeCatalog(options []domain.Option) ([]domain.Option, error) {
	seen := make(map[string]bool, len(options))
	out := make([]domain.Option, 0, len(options))
	var dups []string

	for _, opt := range options {
		if seen[opt.Value] {
			dups = append(dups, opt.Value)
			continue
		}
		seen[opt.Value] = true
		opt.Selected = false
		out = append(out, opt)
	}

	if len(dups) > 0 {
		return out, &DuplicateError{Values: dups}
	}
	return out, nil
}

// Contains reports whether value is present in options
func Contains(options []domain.Option, value string) bool {
	return indexOf(options, value) >= 0
}

func indexOf(options []domain.Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// SelectedSet indexes a selection by value for flag derivation
func SelectedSet(selection []domain.Option) map[string]bool {
	set := make(map[string]bool, len(selection))
	for _, opt := range selection {
		set[opt.Value] = true
	}
	return set
}
