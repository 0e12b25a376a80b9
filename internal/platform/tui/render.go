package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grid2048/internal/config"
	"github.com/vovakirdan/grid2048/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// Renderer converts Screen buffers to styled strings using a theme.
type Renderer struct {
	lg     *lipgloss.Renderer
	theme  config.Theme
	styles map[colorPair]lipgloss.Style
}

// NewRenderer creates a renderer. A nil lipgloss renderer uses the default one.
func NewRenderer(lg *lipgloss.Renderer, theme config.Theme) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		theme:  theme,
		styles: make(map[colorPair]lipgloss.Style),
	}
}

// style returns the cached style for a color pair.
func (r *Renderer) style(p colorPair) lipgloss.Style {
	if st, ok := r.styles[p]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if hex := r.theme.Hex(p.fg); hex != "" {
		st = st.Foreground(lipgloss.Color(hex))
	}
	if hex := r.theme.Hex(p.bg); hex != "" {
		st = st.Background(lipgloss.Color(hex))
	}
	if _, tile := p.bg.TileValue(); tile {
		st = st.Bold(true)
	}
	r.styles[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{fg: start.Fg, bg: start.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}
