package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectdrop/internal/domain"
)

// TriggerRenderer handles rendering of the closed dropdown box
type TriggerRenderer struct {
	styles *Styles
}

// NewTriggerRenderer creates a new trigger renderer
func NewTriggerRenderer(styles *Styles) *TriggerRenderer {
	return &TriggerRenderer{
		styles: styles,
	}
}

// RenderTrigger renders the trigger box, width columns wide including its frame
func (t *TriggerRenderer) RenderTrigger(state ViewState, width int) string {
	style := t.styles.TriggerFilled
	if state.Outline {
		style = t.styles.TriggerOutline
		if state.Open {
			style = style.BorderForeground(t.styles.TriggerActive)
		}
	}

	arrow := "▾"
	if state.Open {
		arrow = "▴"
	}

	inner := width - style.GetHorizontalBorderSize()
	bodyWidth := inner - style.GetHorizontalPadding() - 2 // space and arrow
	if bodyWidth < 1 {
		bodyWidth = 1
	}

	body := lipgloss.NewStyle().Width(bodyWidth).Render(t.renderContent(state))
	content := lipgloss.JoinHorizontal(lipgloss.Top, body, " ", t.styles.Arrow.Render(arrow))

	return style.Width(inner).Render(content)
}

func (t *TriggerRenderer) renderContent(state ViewState) string {
	if len(state.Selection) == 0 {
		return t.styles.Placeholder.Render(state.Placeholder)
	}
	if !state.Multiple {
		return state.Selection[0].Label
	}
	return t.renderBadges(state.Selection, state.FocusedBadge)
}

// renderBadges renders one badge per selected option with a delete mark
func (t *TriggerRenderer) renderBadges(selection []domain.Option, focused int) string {
	badges := make([]string, len(selection))
	for i, opt := range selection {
		style := t.styles.Badge
		if i == focused {
			style = t.styles.BadgeFocused
		}
		badges[i] = style.Render(opt.Label + " ×")
	}
	return strings.Join(badges, " ")
}
