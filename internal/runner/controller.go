package runner

import (
	"math"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/level"
)

// Controller moves the player before the actors act each frame.
type Controller interface {
	Control(t float64, player level.Actor, lvl *level.Level)
}

// ControllerFunc adapts a function to the Controller interface.
type ControllerFunc func(t float64, player level.Actor, lvl *level.Level)

// Control calls f.
func (f ControllerFunc) Control(t float64, player level.Actor, lvl *level.Level) {
	f(t, player, lvl)
}

// Idle leaves the player where it is.
var Idle Controller = ControllerFunc(func(float64, level.Actor, *level.Level) {})

// Movable is an actor whose position can be set from outside.
type Movable interface {
	level.Actor
	SetPos(pos core.Vector)
}

// DefaultSeekSpeed is the Seeker speed in tiles per second.
const DefaultSeekSpeed = 4.0

// Seeker walks the player toward the nearest coin, first horizontally and
// then vertically. Moves into walls or lava are refused, so the player
// never dies by its own step but can get stuck or be hit by a fireball.
type Seeker struct {
	Speed float64
}

// Control moves the player one step toward the nearest coin.
func (s Seeker) Control(t float64, player level.Actor, lvl *level.Level) {
	m, ok := player.(Movable)
	if !ok {
		return
	}
	target, ok := nearestCoin(player, lvl)
	if !ok {
		return
	}

	speed := s.Speed
	if speed <= 0 {
		speed = DefaultSeekSpeed
	}
	limit := speed * t

	from := center(player.Box())
	delta := target.Plus(from.Times(-1))

	if dx := clampStep(delta.X, limit); dx != 0 {
		next := m.Pos().Plus(core.NewVector(dx, 0))
		if lvl.ObstacleAt(next, m.Size()) == level.ObstacleNone {
			m.SetPos(next)
		}
	}
	if dy := clampStep(delta.Y, limit); dy != 0 {
		next := m.Pos().Plus(core.NewVector(0, dy))
		if lvl.ObstacleAt(next, m.Size()) == level.ObstacleNone {
			m.SetPos(next)
		}
	}
}

func nearestCoin(player level.Actor, lvl *level.Level) (core.Vector, bool) {
	from := center(player.Box())
	best := math.Inf(1)
	var target core.Vector
	for _, a := range lvl.Actors() {
		if a.Kind() != level.KindCoin {
			continue
		}
		c := center(a.Box())
		if d := math.Hypot(c.X-from.X, c.Y-from.Y); d < best {
			best = d
			target = c
		}
	}
	return target, !math.IsInf(best, 1)
}

func center(b core.Box) core.Vector {
	return core.NewVector((b.Left()+b.Right())/2, (b.Top()+b.Bottom())/2)
}

func clampStep(d, limit float64) float64 {
	if d > limit {
		return limit
	}
	if d < -limit {
		return -limit
	}
	return d
}
