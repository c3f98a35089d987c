package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles floating layers drawn over the main content
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderLayer draws layer over base with its top-left corner at column x,
// row y. Base content left and right of the layer is kept.
func (pr *PopupRenderer) RenderLayer(base, layer string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	layerLines := strings.Split(layer, "\n")
	layerW := lipgloss.Width(layer)

	for len(baseLines) < y+len(layerLines) {
		baseLines = append(baseLines, "")
	}

	for i, layerLine := range layerLines {
		line := baseLines[y+i]

		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		if w := ansi.StringWidth(layerLine); w < layerW {
			layerLine += strings.Repeat(" ", layerW-w)
		}
		right := ""
		if ansi.StringWidth(line) > x+layerW {
			right = ansi.TruncateLeft(line, x+layerW, "")
		}

		baseLines[y+i] = left + resetSGR + layerLine + resetSGR + right
	}

	return strings.Join(baseLines, "\n")
}

// RenderPopupOverlay renders a centered popup over greyed out main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2

	return pr.RenderLayer(desaturateANSI(mainContent), styledPopup, x, y)
}

// resetSGR stops base styles from bleeding into the layer
const resetSGR = "\x1b[0m"

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(s, "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = grey.Render(ansiRE.ReplaceAllString(line, ""))
	}
	return strings.Join(lines, "\n")
}
