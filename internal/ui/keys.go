package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the bindings for the short help line. The input modes do
// the actual matching.
type keyMap struct {
	Open        key.Binding
	Navigate    key.Binding
	Pick        key.Binding
	Search      key.Binding
	Clear       key.Binding
	Badges      key.Binding
	DeleteBadge key.Binding
	Mode        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Open:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "open")),
		Navigate:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
		Pick:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/close")),
		Badges:      key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "badges")),
		DeleteBadge: key.NewBinding(key.WithKeys("backspace", "delete", "x"), key.WithHelp("x", "remove")),
		Mode:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "single/multi")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// forMode enables only the bindings that do something in the given state
func (k keyMap) forMode(open, searching, multiple, searchEnabled bool) keyMap {
	k.Open.SetEnabled(!open)
	k.Navigate.SetEnabled(open)
	k.Pick.SetEnabled(open)
	k.Search.SetEnabled(open && searchEnabled && !searching)
	k.Clear.SetEnabled(open)
	k.Badges.SetEnabled(multiple && !searching)
	k.DeleteBadge.SetEnabled(multiple && !searching)
	k.Mode.SetEnabled(!searching)
	k.Help.SetEnabled(!searching)
	k.Quit.SetEnabled(!searching)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Navigate, k.Pick, k.Search, k.Clear, k.Badges, k.DeleteBadge, k.Mode, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Navigate, k.Pick},
		{k.Search, k.Clear},
		{k.Badges, k.DeleteBadge, k.Mode},
		{k.Help, k.Quit},
	}
}
