package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectdrop/internal/logic"
	"selectdrop/internal/ui/coordinator"
)

// RenderOptionFunc renders the content of one panel row. The cursor marker,
// check mark and selected background are still drawn around it.
type RenderOptionFunc func(row coordinator.ViewOption) string

// OptionRenderer handles rendering of panel rows
type OptionRenderer struct {
	styles *Styles
	custom RenderOptionFunc
}

// NewOptionRenderer creates a new option renderer
func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{
		styles: styles,
	}
}

// SetRenderFunc replaces the default label rendering; nil restores it
func (r *OptionRenderer) SetRenderFunc(fn RenderOptionFunc) {
	r.custom = fn
}

// RenderOption renders one row of the filtered view
func (r *OptionRenderer) RenderOption(row coordinator.ViewOption, isCursor, multiple bool, width int) string {
	base := lipgloss.NewStyle()
	cursorStyle := r.styles.Cursor
	if row.Selected {
		base = base.Background(r.styles.SelectionBg)
		cursorStyle = cursorStyle.Background(r.styles.SelectionBg)
	}

	var parts []string

	if isCursor {
		parts = append(parts, cursorStyle.Render("›"), base.Render(" "))
	} else {
		parts = append(parts, base.Render("  "))
	}

	parts = append(parts, base.Render(r.checkMark(row.Selected, multiple)))

	if r.custom != nil {
		parts = append(parts, base.Render(r.custom(row)))
	} else {
		parts = append(parts, r.renderSegments(row.Segments, row.Selected))
	}

	line := strings.Join(parts, "")

	// Pad so the selected background spans the row
	if width > 0 {
		if lineLen := lipgloss.Width(line); lineLen < width {
			line += base.Render(strings.Repeat(" ", width-lineLen))
		}
	}
	return line
}

func (r *OptionRenderer) checkMark(selected, multiple bool) string {
	switch {
	case multiple && selected:
		return "[x] "
	case multiple:
		return "[ ] "
	case selected:
		return "● "
	default:
		return "  "
	}
}

// renderSegments draws matched segments in the highlight style
func (r *OptionRenderer) renderSegments(segments []logic.Segment, selected bool) string {
	normal := lipgloss.NewStyle()
	match := r.styles.Highlight
	if selected {
		normal = normal.Background(r.styles.SelectionBg)
		match = match.Background(r.styles.SelectionBg)
	}

	var b strings.Builder
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		if seg.Match {
			b.WriteString(match.Render(seg.Text))
		} else {
			b.WriteString(normal.Render(seg.Text))
		}
	}
	return b.String()
}
