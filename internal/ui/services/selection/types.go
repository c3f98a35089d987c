package selection

// State holds the selection mode. The selection itself lives with the host.
type State struct {
	Multiple bool
}
