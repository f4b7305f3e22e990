package level

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/platformer/internal/core"
)

// Status is the outcome of a level.
type Status int

const (
	StatusNone Status = iota // Still playing
	StatusWon                // All coins collected
	StatusLost               // Touched lava or a fireball
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// DefaultFinishDelay is the number of ticks a level keeps running after
// its status is decided, so the final frame can still be shown.
const DefaultFinishDelay = 1

// Level owns the obstacle grid, the actors and the status machine.
type Level struct {
	grid        Grid
	width       int
	height      int
	actors      []Actor
	player      Actor
	status      Status
	finishDelay int
}

// New creates a level from a grid and its actors. The actor slice is
// copied; the caller's slice is never modified. The first actor of
// KindPlayer becomes the level's player.
func New(grid Grid, actors []Actor) *Level {
	l := &Level{
		grid:        grid,
		width:       grid.Width(),
		height:      grid.Height(),
		actors:      slices.Clone(actors),
		finishDelay: DefaultFinishDelay,
	}
	for _, a := range actors {
		if a.Kind() == KindPlayer {
			l.player = a
			break
		}
	}
	return l
}

// Grid returns a copy of the obstacle grid.
func (l *Level) Grid() Grid {
	return l.grid.Clone()
}

// Width returns the grid width in tiles.
func (l *Level) Width() int {
	return l.width
}

// Height returns the grid height in tiles.
func (l *Level) Height() int {
	return l.height
}

// Player returns the player actor, or nil if the level has none.
func (l *Level) Player() Actor {
	return l.player
}

// Actors returns a copy of the actor list in insertion order.
func (l *Level) Actors() []Actor {
	out := make([]Actor, len(l.actors))
	copy(out, l.actors)
	return out
}

// Status returns the current outcome.
func (l *Level) Status() Status {
	return l.status
}

// FinishDelay returns the remaining grace ticks.
func (l *Level) FinishDelay() int {
	return l.finishDelay
}

// IsFinished reports whether the level is decided and its grace period
// has run out.
func (l *Level) IsFinished() bool {
	return l.status != StatusNone && l.finishDelay < 0
}

// Tick counts down the grace period once the status is decided.
// Drivers call it once per frame after contacts are resolved.
func (l *Level) Tick() {
	if l.status != StatusNone {
		l.finishDelay--
	}
}

// ObstacleAt returns the obstacle a box at pos with the given size would
// touch. Falling below the world is lava; leaving it sideways or through
// the top is wall. Inside, covered cells are scanned column by column and
// the first non-empty one wins.
func (l *Level) ObstacleAt(pos, size core.Vector) Obstacle {
	box := core.NewBox(pos, size)

	if box.Bottom() > float64(l.height) {
		return ObstacleLava
	}
	if box.Left() < 0 || box.Right() > float64(l.width) || box.Top() < 0 {
		return ObstacleWall
	}

	x0, x1, y0, y1 := box.Cells()
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			if o := l.grid.At(x, y); o != ObstacleNone {
				return o
			}
		}
	}
	return ObstacleNone
}

// ActorAt returns the first other actor, in insertion order, whose box
// intersects a. Returns nil if there is none.
func (l *Level) ActorAt(a Actor) (Actor, error) {
	if a == nil {
		return nil, fmt.Errorf("level: actor lookup with nil actor: %w", core.ErrInvalidArgument)
	}
	for _, other := range l.actors {
		hit, err := IsIntersect(a, other)
		if err != nil {
			return nil, err
		}
		if hit {
			return other, nil
		}
	}
	return nil, nil
}

// RemoveActor removes a from the level. Does nothing if it is not present.
func (l *Level) RemoveActor(a Actor) {
	for i, other := range l.actors {
		if other == a {
			l.actors = append(l.actors[:i], l.actors[i+1:]...)
			return
		}
	}
}

// NoMoreActors reports whether no actor of the given kind remains.
func (l *Level) NoMoreActors(kind Kind) bool {
	for _, a := range l.actors {
		if a.Kind() == kind {
			return false
		}
	}
	return true
}

// PlayerTouched resolves a contact between the player and something of
// the given kind. Once the status is decided, further contacts are ignored.
func (l *Level) PlayerTouched(kind Kind, a Actor) {
	if l.status != StatusNone {
		return
	}

	switch kind {
	case KindLava, KindFireball:
		l.status = StatusLost
	case KindCoin:
		l.RemoveActor(a)
		if l.NoMoreActors(KindCoin) {
			l.status = StatusWon
		}
	}
}
