// Package actors implements the concrete platformer actors: the fireball
// family, coins and the player. Each registers itself with the registry so
// level packs can refer to it by name.
package actors

import (
	"math/rand"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/registry"
)

// Fixed fireball velocities in tiles per second.
var (
	HorizontalFireballSpeed = core.NewVector(2, 0)
	VerticalFireballSpeed   = core.NewVector(0, 2)
	FireRainSpeed           = core.NewVector(0, 3)
)

// ObstacleResponse is what a fireball does when its next step is blocked.
type ObstacleResponse int

const (
	Bounce ObstacleResponse = iota // Reverse velocity
	Reset                          // Jump back to the spawn position
)

// Fireball is a unit-sized hazard moving at constant speed.
type Fireball struct {
	level.Base
	start    core.Vector
	response ObstacleResponse
}

// NewFireball creates a fireball at pos.
func NewFireball(pos, speed core.Vector, response ObstacleResponse) (*Fireball, error) {
	base, err := level.NewBase(pos, core.NewVector(1, 1), speed)
	if err != nil {
		return nil, err
	}
	return &Fireball{Base: base, start: pos, response: response}, nil
}

// NewHorizontalFireball creates a fireball bouncing left and right.
func NewHorizontalFireball(pos core.Vector) (*Fireball, error) {
	return NewFireball(pos, HorizontalFireballSpeed, Bounce)
}

// NewVerticalFireball creates a fireball bouncing up and down.
func NewVerticalFireball(pos core.Vector) (*Fireball, error) {
	return NewFireball(pos, VerticalFireballSpeed, Bounce)
}

// NewFireRain creates a falling fireball that restarts from its spawn
// point whenever it hits something.
func NewFireRain(pos core.Vector) (*Fireball, error) {
	return NewFireball(pos, FireRainSpeed, Reset)
}

// Kind returns KindFireball.
func (f *Fireball) Kind() level.Kind {
	return level.KindFireball
}

// Start returns the spawn position.
func (f *Fireball) Start() core.Vector {
	return f.start
}

// NextPosition returns where the fireball would be after t seconds.
func (f *Fireball) NextPosition(t float64) core.Vector {
	return f.Pos().Plus(f.Speed().Times(t))
}

// Act moves the fireball unless the move would hit an obstacle, in which
// case it bounces or resets instead of moving.
func (f *Fireball) Act(t float64, lvl *level.Level) {
	next := f.NextPosition(t)
	if lvl.ObstacleAt(next, f.Size()) != level.ObstacleNone {
		f.handleObstacle()
		return
	}
	f.SetPos(next)
}

func (f *Fireball) handleObstacle() {
	switch f.response {
	case Bounce:
		f.SetSpeed(f.Speed().Times(-1))
	case Reset:
		f.SetPos(f.start)
	}
}

func init() {
	registry.Register("horizontal_fireball", func(pos core.Vector, _ *rand.Rand) (level.Actor, error) {
		return NewHorizontalFireball(pos)
	})
	registry.Register("vertical_fireball", func(pos core.Vector, _ *rand.Rand) (level.Actor, error) {
		return NewVerticalFireball(pos)
	})
	registry.Register("fire_rain", func(pos core.Vector, _ *rand.Rand) (level.Actor, error) {
		return NewFireRain(pos)
	})
}
