package actors

import (
	"math/rand"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/registry"
)

var (
	playerOffset = core.NewVector(0, -0.5)
	playerSize   = core.NewVector(0.8, 1.5)
)

// Player is the controlled actor. It has no behavior of its own; input
// handling outside the simulation moves it with SetPos and SetSpeed.
type Player struct {
	level.Base
}

// NewPlayer creates a player standing in the tile at pos. The box is
// raised half a tile so its feet line up with the tile bottom.
func NewPlayer(pos core.Vector) (*Player, error) {
	base, err := level.NewBase(pos.Plus(playerOffset), playerSize, core.Zero)
	if err != nil {
		return nil, err
	}
	return &Player{Base: base}, nil
}

// Kind returns KindPlayer.
func (p *Player) Kind() level.Kind {
	return level.KindPlayer
}

func init() {
	registry.Register("player", func(pos core.Vector, _ *rand.Rand) (level.Actor, error) {
		return NewPlayer(pos)
	})
}
