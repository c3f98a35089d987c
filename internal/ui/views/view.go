package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"selectdrop/internal/domain"
	"selectdrop/internal/ui/coordinator"
)

const (
	minTriggerWidth = 24
	maxTriggerWidth = 56
	defaultWidth    = 80
	defaultHeight   = 24
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Settings
	Label       string
	Placeholder string
	Outline     bool
	Multiple    bool
	WithSearch  bool

	// Dropdown
	Open           bool
	Selection      []domain.Option
	Rows           []coordinator.ViewOption
	CatalogSize    int
	CursorIndex    int
	ViewportOffset int
	ViewportHeight int
	FocusedBadge   int
	Query          string
	Searching      bool
	SearchInput    string // rendered text box while searching

	// Chrome
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpContent   string
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	triggerRender *TriggerRenderer
	optionRender  *OptionRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		triggerRender: NewTriggerRenderer(styles),
		optionRender:  NewOptionRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// SetRenderOption installs a custom row renderer; nil restores the default
func (r *Renderer) SetRenderOption(fn RenderOptionFunc) {
	r.optionRender.SetRenderFunc(fn)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width, height := state.Width, state.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	content := &strings.Builder{}

	// Title with catalog size on the right
	logo := r.styles.Title.Render("selectdrop")
	mode := "single"
	if state.Multiple {
		mode = "multi"
	}
	info := r.styles.Dim.Render(fmt.Sprintf("%d options · %s", state.CatalogSize, mode))
	availableWidth := width - 4 // Account for main container padding
	gap := availableWidth - lipgloss.Width(logo) - lipgloss.Width(info)
	if gap < 2 {
		gap = 2
	}
	titleLines := strings.SplitN(logo, "\n", 2)
	titleLines[0] += strings.Repeat(" ", gap) + info
	content.WriteString(strings.Join(titleLines, "\n"))
	content.WriteString("\n")

	// Trigger, with the optional label to its left
	labelBlock := ""
	if state.Label != "" {
		labelBlock = r.styles.Label.Render(state.Label)
	}
	labelWidth := lipgloss.Width(labelBlock)
	triggerWidth := clamp(availableWidth-labelWidth, minTriggerWidth, maxTriggerWidth)
	trigger := r.triggerRender.RenderTrigger(state, triggerWidth)
	if labelBlock != "" {
		trigger = lipgloss.JoinHorizontal(lipgloss.Center, labelBlock, trigger)
	}
	content.WriteString(trigger)

	panelY := strings.Count(content.String(), "\n") + 1

	// Push status and help to the bottom
	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	availableLines := height - 2 // Main padding
	if padding := availableLines - currentLines - footerLines; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	body := content.String()
	if state.Open {
		panel := r.renderPanel(state, triggerWidth)
		body = r.popupRender.RenderLayer(body, panel, labelWidth, panelY)
	}

	finalContent := r.styles.Main.MaxHeight(height).Render(body)

	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, height, width, r.styles.HelpBox)
	}

	return finalContent
}

// renderPanel renders the search box and the visible rows
func (r *Renderer) renderPanel(state ViewState, width int) string {
	inner := width - r.styles.Panel.GetHorizontalBorderSize()
	var lines []string

	if state.WithSearch {
		lines = append(lines, r.renderSearchBox(state, inner))
	}

	total := len(state.Rows)
	start := clamp(state.ViewportOffset, 0, total)
	end := total
	if state.ViewportHeight > 0 && start+state.ViewportHeight < end {
		end = start + state.ViewportHeight
	}

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", start)))
	}

	if total == 0 {
		msg := "No options"
		if state.Query != "" {
			msg = fmt.Sprintf("No options match %q", state.Query)
		}
		lines = append(lines, r.styles.Dim.Render(msg))
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.optionRender.RenderOption(state.Rows[i], i == state.CursorIndex, state.Multiple, inner))
	}

	if below := total - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", below)))
	}

	return r.styles.Panel.Width(inner).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderSearchBox(state ViewState, width int) string {
	prompt := r.styles.SearchPrompt.Render("⌕ ")

	var text string
	switch {
	case state.Searching:
		text = state.SearchInput
	case state.Query != "":
		text = state.Query
	default:
		text = r.styles.Placeholder.Render("Search...")
	}

	line := prompt + text
	if state.Query != "" {
		clearMark := r.styles.SearchClear.Render("×")
		if gap := width - lipgloss.Width(line) - lipgloss.Width(clearMark); gap > 0 {
			line += strings.Repeat(" ", gap)
		} else {
			line += " "
		}
		line += clearMark
	}
	return line
}

// renderFooter renders the status line and the short help
func (r *Renderer) renderFooter(state ViewState) string {
	status := ""
	if state.StatusMessage != "" {
		if state.StatusIsError {
			status = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			status = r.styles.Status.Render(state.StatusMessage)
		}
	}

	helpLine := r.styles.Help.Render("Press ? for help")
	if state.KeyMap != nil {
		helpLine = state.HelpModel.View(state.KeyMap)
	}

	return status + "\n" + helpLine
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
