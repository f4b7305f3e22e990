package actors

import (
	"math/rand"

	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/registry"
)

// StandardLegend maps the classic schema symbols to registered actor names.
var StandardLegend = map[rune]string{
	'@': "player",
	'o': "coin",
	'=': "horizontal_fireball",
	'|': "vertical_fireball",
	'v': "fire_rain",
}

// Dictionary returns the parser dictionary for StandardLegend. Coins draw
// their bob phase from rng.
func Dictionary(rng *rand.Rand) level.Dictionary {
	dict, err := registry.Dictionary(StandardLegend, rng)
	if err != nil {
		// Every name in StandardLegend is registered by this package.
		panic(err)
	}
	return dict
}
