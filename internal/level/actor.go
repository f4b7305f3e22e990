// Package level implements the platformer simulation: actors and their
// bounding boxes, the static obstacle grid, the level status machine and
// the parser that builds levels from textual schemas.
//
// A Level is owned by a single driver goroutine and is not safe for
// concurrent use.
package level

import (
	"fmt"

	"github.com/vovakirdan/platformer/internal/core"
)

// Kind identifies what an actor is, or what the player came in contact with.
type Kind int

const (
	KindActor    Kind = iota // Generic actor with no behavior
	KindPlayer                // The player-controlled actor
	KindCoin                  // Collectible; the level is won when none remain
	KindFireball              // Moving hazard
	KindLava                  // Lethal tile contact (not an actor)
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindFireball:
		return "fireball"
	case KindLava:
		return "lava"
	default:
		return "unknown"
	}
}

// Actor is a positioned, sized game entity that may move each tick.
type Actor interface {
	// Kind returns the actor's variant tag.
	Kind() Kind

	// Pos returns the top-left corner of the actor's bounding box.
	Pos() core.Vector

	// Size returns the bounding box dimensions.
	Size() core.Vector

	// Speed returns the actor's velocity in tiles per second.
	Speed() core.Vector

	// Box returns the current bounding box.
	Box() core.Box

	// Act advances the actor by t seconds. It is the only place an actor
	// changes its own position or speed; obstacle queries go through lvl.
	Act(t float64, lvl *Level)
}

// Base carries the position, size and velocity shared by every actor.
// Concrete actors embed it and override Kind and Act.
type Base struct {
	pos   core.Vector
	size  core.Vector
	speed core.Vector
}

// NewBase validates and creates actor state. Size components must be
// non-negative and all components finite.
func NewBase(pos, size, speed core.Vector) (Base, error) {
	if !pos.IsFinite() || !size.IsFinite() || !speed.IsFinite() {
		return Base{}, fmt.Errorf("level: actor vectors must be finite, got pos=%v size=%v speed=%v: %w",
			pos, size, speed, core.ErrInvalidArgument)
	}
	if size.X < 0 || size.Y < 0 {
		return Base{}, fmt.Errorf("level: actor size must be non-negative, got %v: %w",
			size, core.ErrInvalidArgument)
	}
	return Base{pos: pos, size: size, speed: speed}, nil
}

// DefaultBase returns a unit-sized, motionless actor at the origin.
func DefaultBase() Base {
	return Base{size: core.NewVector(1, 1)}
}

// NewActor creates a generic actor with no behavior of its own.
func NewActor(pos, size, speed core.Vector) (*Base, error) {
	b, err := NewBase(pos, size, speed)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Kind returns KindActor. Variants override it.
func (b *Base) Kind() Kind {
	return KindActor
}

// Pos returns the top-left corner.
func (b *Base) Pos() core.Vector {
	return b.pos
}

// Size returns the box dimensions.
func (b *Base) Size() core.Vector {
	return b.size
}

// Speed returns the velocity.
func (b *Base) Speed() core.Vector {
	return b.speed
}

// Box returns the current bounding box.
func (b *Base) Box() core.Box {
	return core.NewBox(b.pos, b.size)
}

// SetPos moves the actor. Used by variants in Act and by external
// controllers that drive the player.
func (b *Base) SetPos(pos core.Vector) {
	b.pos = pos
}

// SetSpeed replaces the velocity.
func (b *Base) SetSpeed(speed core.Vector) {
	b.speed = speed
}

// Act is a no-op for the generic actor.
func (b *Base) Act(float64, *Level) {}

// IsIntersect reports whether a and other overlap. An actor never
// intersects itself. Returns core.ErrInvalidArgument if either is nil.
func IsIntersect(a, other Actor) (bool, error) {
	if a == nil || other == nil {
		return false, fmt.Errorf("level: intersect with nil actor: %w", core.ErrInvalidArgument)
	}
	if a == other {
		return false, nil
	}
	return a.Box().Intersects(other.Box()), nil
}
