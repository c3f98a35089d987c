package domain

// Option represents one entry of a select catalog
type Option struct {
	Label    string `toml:"label" yaml:"label"`
	Value    string `toml:"value" yaml:"value"` // identity key within a catalog
	Selected bool   `toml:"-" yaml:"-"`         // advisory, derived from the selection
}

// Values returns the identity keys of the given options in order
func Values(options []Option) []string {
	values := make([]string, 0, len(options))
	for _, opt := range options {
		values = append(values, opt.Value)
	}
	return values
}
