package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	TriggerOutline lipgloss.Style
	TriggerFilled  lipgloss.Style
	TriggerActive  lipgloss.Color
	Placeholder    lipgloss.Style
	Arrow          lipgloss.Style
	Badge          lipgloss.Style
	BadgeFocused   lipgloss.Style
	BadgeDelete    lipgloss.Style
	Panel          lipgloss.Style
	SearchPrompt   lipgloss.Style
	SearchClear    lipgloss.Style
	Cursor         lipgloss.Style
	Highlight      lipgloss.Style
	SelectionBg    lipgloss.Color
	Dim            lipgloss.Style
	Scroll         lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Help           lipgloss.Style
	HelpBox        lipgloss.Style
	Main           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label: lipgloss.NewStyle().Bold(true).PaddingRight(1),
		TriggerOutline: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		TriggerFilled: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Padding(1, 2),
		TriggerActive: lipgloss.Color("99"),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Arrow:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("60")).
			Padding(0, 1),
		BadgeFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("99")).
			Bold(true).
			Padding(0, 1),
		BadgeDelete: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		SearchPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		SearchClear:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:  lipgloss.Color("238"),
		Dim:          lipgloss.NewStyle().Faint(true),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:         lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
