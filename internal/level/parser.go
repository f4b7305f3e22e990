package level

import (
	"reflect"

	"github.com/vovakirdan/platformer/internal/core"
)

// Factory creates an actor anchored at a grid position. A nil result,
// including a nil pointer of a concrete actor type, is skipped by the
// parser.
type Factory func(pos core.Vector) Actor

// Dictionary maps schema symbols to actor factories.
type Dictionary map[rune]Factory

// Parser builds levels from textual schemas.
//
// Symbols:
//
//	'x' = wall
//	'!' = lava
//	any dictionary key = actor spawned on empty ground
//	anything else = empty ground
type Parser struct {
	dict Dictionary
}

// NewParser creates a parser for the given dictionary. The dictionary is
// copied, so later changes to it do not affect the parser.
func NewParser(dict Dictionary) *Parser {
	p := &Parser{dict: make(Dictionary, len(dict))}
	for sym, f := range dict {
		p.dict[sym] = f
	}
	return p
}

// ActorFromSymbol looks up the factory for a symbol.
func (p *Parser) ActorFromSymbol(sym rune) (Factory, bool) {
	f, ok := p.dict[sym]
	if !ok || f == nil {
		return nil, false
	}
	return f, true
}

// ObstacleFromSymbol maps a schema symbol to an obstacle.
func (p *Parser) ObstacleFromSymbol(sym rune) Obstacle {
	switch sym {
	case 'x':
		return ObstacleWall
	case '!':
		return ObstacleLava
	default:
		return ObstacleNone
	}
}

// CreateGrid builds the obstacle grid, one row per schema line and one
// cell per character.
func (p *Parser) CreateGrid(rows []string) Grid {
	grid := make(Grid, len(rows))
	for y, line := range rows {
		symbols := []rune(line)
		grid[y] = make([]Obstacle, len(symbols))
		for x, sym := range symbols {
			grid[y][x] = p.ObstacleFromSymbol(sym)
		}
	}
	return grid
}

// CreateActors spawns an actor for every dictionary symbol in the schema,
// in row-major order.
func (p *Parser) CreateActors(rows []string) []Actor {
	var actors []Actor
	for y, line := range rows {
		for x, sym := range []rune(line) {
			factory, ok := p.ActorFromSymbol(sym)
			if !ok {
				continue
			}
			if a := factory(core.NewVector(float64(x), float64(y))); !isNil(a) {
				actors = append(actors, a)
			}
		}
	}
	return actors
}

// Parse builds a fresh level from a schema.
func (p *Parser) Parse(rows []string) *Level {
	return New(p.CreateGrid(rows), p.CreateActors(rows))
}

// isNil reports whether a is nil or wraps a nil pointer.
func isNil(a Actor) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
