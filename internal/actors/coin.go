package actors

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/registry"
)

// Coin bob parameters.
const (
	CoinSpringSpeed = 8.0  // Phase advance per second
	CoinSpringDist  = 0.07 // Vertical amplitude in tiles
)

var (
	coinOffset = core.NewVector(0.2, 0.1)
	coinSize   = core.NewVector(0.6, 0.6)
)

// Coin is a collectible that bobs in place. It ignores the obstacle grid.
type Coin struct {
	level.Base
	startPos core.Vector
	spring   float64
}

// NewCoin creates a coin in the tile at pos. The initial bob phase is drawn
// from rng; a nil rng uses the global source.
func NewCoin(pos core.Vector, rng *rand.Rand) (*Coin, error) {
	start := pos.Plus(coinOffset)
	base, err := level.NewBase(start, coinSize, core.Zero)
	if err != nil {
		return nil, err
	}

	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}

	return &Coin{
		Base:     base,
		startPos: start,
		spring:   draw() * 2 * math.Pi,
	}, nil
}

// Kind returns KindCoin.
func (c *Coin) Kind() level.Kind {
	return level.KindCoin
}

// StartPos returns the resting position the coin bobs around.
func (c *Coin) StartPos() core.Vector {
	return c.startPos
}

// Spring returns the current bob phase in radians.
func (c *Coin) Spring() float64 {
	return c.spring
}

// Act advances the bob phase by t seconds.
func (c *Coin) Act(t float64, _ *level.Level) {
	c.spring += CoinSpringSpeed * t
	c.SetPos(c.startPos.Plus(core.NewVector(0, math.Sin(c.spring)*CoinSpringDist)))
}

func init() {
	registry.Register("coin", func(pos core.Vector, rng *rand.Rand) (level.Actor, error) {
		return NewCoin(pos, rng)
	})
}
