package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
	"github.com/KirkDiggler/trigger-overlay/internal/services/overlay"
)

// Renderer draws overlay results as styled terminal text
type Renderer struct {
	r *lipgloss.Renderer
}

// New creates a renderer writing through r, or the default lipgloss
// renderer when nil
func New(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{r: r}
}

// Style converts an element style. Padding follows the CSS shorthand of
// one to four values; other lengths are ignored.
func (r *Renderer) Style(s element.Style) lipgloss.Style {
	st := r.r.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Blink(s.Blink)

	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Width > 0 {
		st = st.Width(s.Width)
	}
	if n := len(s.Padding); n > 0 && n <= 4 {
		st = st.Padding(s.Padding...)
	}
	return st
}

// Result renders one element; hidden elements render as nothing
func (r *Renderer) Result(res overlay.RenderResult) string {
	if !res.Visible {
		return ""
	}
	return r.Style(res.Style).Render(res.Text)
}

// Frame stacks the visible elements of one tick
func (r *Renderer) Frame(results []overlay.RenderResult) string {
	lines := make([]string, 0, len(results))
	for _, res := range results {
		if !res.Visible {
			continue
		}
		lines = append(lines, r.Result(res))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
