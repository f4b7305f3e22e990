package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/runner"
)

// Palette colors canvas runes for terminal output.
type Palette map[rune]lipgloss.Style

// DefaultPalette colors the DefaultSymbols runes.
func DefaultPalette() Palette {
	return Palette{
		DefaultSymbols.Wall:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		DefaultSymbols.Lava:     lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true),
		DefaultSymbols.Player:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		DefaultSymbols.Coin:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		DefaultSymbols.Fireball: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Paint returns the canvas as a string with every rune styled by p.
// A nil palette returns plain text.
func (p Palette) Paint(c *Canvas) string {
	if p == nil {
		return c.String()
	}
	var sb strings.Builder
	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.Width(); x++ {
			r := c.Get(x, y)
			if style, ok := p[r]; ok {
				sb.WriteString(style.Render(string(r)))
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Tracer is a runner.Renderer that prints every Every-th frame.
type Tracer struct {
	w       io.Writer
	every   int
	palette Palette
	frames  map[int]int
}

var _ runner.Renderer = (*Tracer)(nil)

// NewTracer creates a tracer writing to w. every values below 1 print
// every frame; a nil palette prints plain text.
func NewTracer(w io.Writer, every int, palette Palette) *Tracer {
	if every < 1 {
		every = 1
	}
	return &Tracer{w: w, every: every, palette: palette, frames: make(map[int]int)}
}

// Frame prints the level on every Every-th frame of a level.
func (t *Tracer) Frame(index int, lvl *level.Level) {
	n := t.frames[index]
	t.frames[index] = n + 1
	if n%t.every != 0 {
		return
	}
	// Write errors are dropped; tracing never stops a run.
	_, _ = fmt.Fprintf(t.w, "level %d frame %d [%s]\n%s\n\n", index, n, lvl.Status(), t.palette.Paint(Draw(lvl, DefaultSymbols)))
}

// Finished prints the level result.
func (t *Tracer) Finished(index int, result runner.LevelResult) {
	delete(t.frames, index)
	_, _ = fmt.Fprintf(t.w, "level %d %s after %d attempt(s), %d frames\n", index, result.Status, result.Attempts, result.Ticks)
}
