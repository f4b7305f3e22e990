// Package render draws a level as text: one rune per tile, actors drawn
// over obstacles at the tile containing the center of their box.
package render

import (
	"math"
	"strings"

	"github.com/vovakirdan/platformer/internal/level"
)

// Canvas is a 2D rune buffer.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.cells = make([][]rune, height)
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
	}
	c.Clear()
	return c
}

// Width returns the canvas width in tiles.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in tiles.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the canvas with spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

// Set places a rune at (x, y). Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// Get returns the rune at (x, y), or a space when out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.cells[y][x]
}

// Row returns row y as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	return string(c.cells[y])
}

// Rows returns every row, top to bottom.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return rows
}

// String joins the rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}

// Symbols maps obstacles and actor kinds to runes.
type Symbols struct {
	Wall     rune
	Lava     rune
	Player   rune
	Coin     rune
	Fireball rune
	Other    rune
}

// DefaultSymbols matches the schema notation.
var DefaultSymbols = Symbols{
	Wall:     'x',
	Lava:     '!',
	Player:   '@',
	Coin:     'o',
	Fireball: '*',
	Other:    '?',
}

// Draw renders lvl onto a new canvas. The player is drawn last.
func Draw(lvl *level.Level, sym Symbols) *Canvas {
	c := NewCanvas(lvl.Width(), lvl.Height())

	grid := lvl.Grid()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			switch grid.At(x, y) {
			case level.ObstacleWall:
				c.Set(x, y, sym.Wall)
			case level.ObstacleLava:
				c.Set(x, y, sym.Lava)
			}
		}
	}

	player := lvl.Player()
	for _, a := range lvl.Actors() {
		if a == player {
			continue
		}
		drawActor(c, a, sym.forKind(a.Kind()))
	}
	if player != nil {
		drawActor(c, player, sym.Player)
	}
	return c
}

func drawActor(c *Canvas, a level.Actor, r rune) {
	b := a.Box()
	x := (b.Left() + b.Right()) / 2
	y := (b.Top() + b.Bottom()) / 2
	c.Set(int(math.Floor(x)), int(math.Floor(y)), r)
}

func (s Symbols) forKind(k level.Kind) rune {
	switch k {
	case level.KindPlayer:
		return s.Player
	case level.KindCoin:
		return s.Coin
	case level.KindFireball:
		return s.Fireball
	default:
		return s.Other
	}
}
